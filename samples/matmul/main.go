package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/harshithparitala/systolic-array-3x3-matrix/config"
	"github.com/harshithparitala/systolic-array-3x3-matrix/engine"
	"github.com/harshithparitala/systolic-array-3x3-matrix/systolic"
	"github.com/harshithparitala/systolic-array-3x3-matrix/verify"
)

func main() {
	runFile, err := os.Create("matmul_run.log")
	if err != nil {
		panic(err)
	}
	// atexit.Exit skips deferred calls, so the log is closed by a handler.
	atexit.Register(func() { runFile.Close() })

	// Trace level is LevelInfo+1; route everything to the run log.
	handler := slog.NewJSONHandler(runFile, &slog.HandlerOptions{
		Level: engine.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	platform := config.MakePlatformBuilder().Build("Matmul")
	shape := platform.Core.Shape()

	// The documented stimulus from the hardware testbench.
	a := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []uint8{2, 1, 3, 4, 5, 7, 6, 9, 8}

	vectors := systolic.ColdStart(a, b)

	var collected [][]uint16
	platform.Driver.Collect(&collected)
	if err := platform.Driver.FeedIn(vectors); err != nil {
		panic(err)
	}
	platform.Driver.Run()

	fmt.Println(engine.RenderOperandMatrix("A", shape.Rows, shape.Depth, a))
	fmt.Println(engine.RenderOperandMatrix("B", shape.Depth, shape.Cols, b))
	fmt.Println(engine.RenderState(platform.Core.Model()))

	report := verify.Compare(shape, vectors, collected)
	report.WriteReport(os.Stdout)

	if !report.Passed() {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
