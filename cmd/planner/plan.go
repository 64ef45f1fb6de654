package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	plannererrors "github.com/sporadicmrp/planner/pkg/errors"
	"github.com/sporadicmrp/planner/pkg/interfaces/request"
	"github.com/sporadicmrp/planner/pkg/planner"
)

func newPlanCommand(logLevel *string) *cobra.Command {
	var inputPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run a single plan request and print the JSON response",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(*logLevel, inputPath, outputPath)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "-", "path to a JSON request file, or - for stdin")
	cmd.Flags().StringVar(&outputPath, "output", "-", "path to write the JSON response, or - for stdout")
	return cmd
}

func runPlan(logLevel, inputPath, outputPath string) error {
	log := resolveLogger(logLevel)
	m := newSharedMetrics()

	req, err := readRequest(inputPath)
	if err != nil {
		_ = writeResponse(outputPath, request.NewErrorResponse(err.Error(), entities.AnalyticsBundle{}))
		return withExitCode(err, exitInvalidInput)
	}
	if err := request.Validate(req); err != nil {
		_ = writeResponse(outputPath, request.NewErrorResponse(err.Error(), entities.AnalyticsBundle{}))
		return withExitCode(err, exitInvalidInput)
	}

	p := planner.New(log, m)
	result, err := p.Plan(context.Background(), req.Demand, req.Parameters)
	if err != nil {
		var bundle entities.AnalyticsBundle
		if result != nil {
			bundle = result.Analytics
		}
		_ = writeResponse(outputPath, request.NewErrorResponse(err.Error(), bundle))
		return withExitCode(err, exitCodeForPlannerError(err))
	}

	resp := request.Response{
		Batches:   result.Batches,
		Analytics: result.Analytics,
	}
	return writeResponse(outputPath, resp)
}

func readRequest(path string) (request.Request, error) {
	var r io.Reader
	if path == "-" || path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return request.Request{}, fail("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req request.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return request.Request{}, plannererrors.NewInvalidInput("malformed request JSON: " + err.Error())
	}
	return req, nil
}

func writeResponse(path string, resp interface{}) error {
	var w io.Writer
	if path == "-" || path == "" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fail("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func exitCodeForPlannerError(err error) int {
	if plannererrors.Is(err, plannererrors.CodeInvalidInput) || plannererrors.Is(err, plannererrors.CodeInfeasibleWindow) {
		return exitInvalidInput
	}
	return exitInternal
}
