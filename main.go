package main

import (
	"fmt"
	"os"

	"github.com/Whispering-Stars/labyrinthium-generator/config"
	"github.com/Whispering-Stars/labyrinthium-generator/export"
	"github.com/Whispering-Stars/labyrinthium-generator/fault"
	"github.com/Whispering-Stars/labyrinthium-generator/generator"
	"github.com/Whispering-Stars/labyrinthium-generator/logger"
	"github.com/Whispering-Stars/labyrinthium-generator/mazemap"
	"github.com/Whispering-Stars/labyrinthium-generator/solver"
)

// Per-component loggers
var (
	appLogger       *logger.Logger
	generatorLogger *logger.Logger
	parserLogger    *logger.Logger
	solverLogger    *logger.Logger
	exporterLogger  *logger.Logger
)

func initLoggers() {
	for _, l := range []struct {
		dst    **logger.Logger
		prefix string
		color  string
	}{
		{&appLogger, "APP", config.ColorGreen},
		{&generatorLogger, "GENERATOR", config.ColorCyan},
		{&parserLogger, "PARSER", config.ColorBlue},
		{&solverLogger, "SOLVER", config.ColorPurple},
		{&exporterLogger, "EXPORTER", config.ColorYellow},
	} {
		var err error
		*l.dst, err = logger.New(l.prefix, l.color, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", l.prefix, err)
			os.Exit(1)
		}
	}
}

func main() {
	initLoggers()

	if err := run(); err != nil {
		// Invariant faults mean the input was never well-formed; they abort
		// without partial output and with a distinct exit code.
		if fault.IsInvariant(err) {
			appLogger.Error(fmt.Sprintf("Invariant violated: %v", err))
			os.Exit(2)
		}
		appLogger.Error(fmt.Sprintf("Run failed: %v", err))
		os.Exit(1)
	}
}

// run executes one batch pass: generate, persist, parse, solve, export,
// strictly in that order.
func run() error {
	maze, err := generator.New(config.Envs.MazeWidth, config.Envs.MazeHeight)
	if err != nil {
		return err
	}
	generatorLogger.Info(fmt.Sprintf("Generated %dx%d maze", config.Envs.MazeWidth, config.Envs.MazeHeight))

	if err := maze.SaveGameMap(config.Envs.TextPath); err != nil {
		return err
	}
	generatorLogger.Info(fmt.Sprintf("Maze text written to %s", config.Envs.TextPath))

	grid, err := mazemap.ReadFile(config.Envs.TextPath)
	if err != nil {
		return err
	}
	parserLogger.Info(fmt.Sprintf("Parsed %dx%d grid", grid.Cols, grid.Rows))

	fmt.Println("Original maze:")
	for _, row := range grid.Cells {
		fmt.Println(string(row))
	}

	route, found, err := solver.Solve(grid)
	if err != nil {
		return err
	}
	if !found {
		// A conclusively explored maze with no route is a normal outcome.
		solverLogger.Warning("No route from start to goal")
		return nil
	}
	solverLogger.Info(fmt.Sprintf("Route found with %d positions", len(route)))

	doc, err := export.Build(grid, route, true)
	if err != nil {
		return err
	}
	if err := export.WriteFile(doc, config.Envs.DocPath); err != nil {
		return err
	}
	exporterLogger.Info(fmt.Sprintf("Maze document written to %s", config.Envs.DocPath))

	return nil
}
