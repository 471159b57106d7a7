package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javajack/ssvfill"
	"github.com/javajack/ssvfill/internal/server"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		pf         paramFlags
		inputPath  string
		outputPath string
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an SSV_Factors workbook into a Sheet3 workbook",
		Example: `  ssvfill convert -i factors.xlsx --product T36A --start-indicator 3
  ssvfill convert -i factors.xlsx -o out.xlsx -p T36A -s 03 --insp-start 8 --insp-end 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pf.params(cmd, a)
			if err := requireInputs(p, inputPath); err != nil {
				return err
			}
			if outputPath == "" {
				outputPath = a.cfg.Output.FileName
			}
			if err := ssvfill.Generate(inputPath, outputPath, p, pf.options(cmd, a)...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input workbook containing the SSV_Factors sheet")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output workbook (default from config: generated_sheet.xlsx)")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var pf paramFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check run parameters without reading a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			issues := ssvfill.Validate(pf.params(cmd, a), pf.options(cmd, a)...)
			out := cmd.OutOrStdout()
			for _, is := range issues {
				fmt.Fprintln(out, is.String())
			}
			if err := ssvfill.FirstError(issues); err != nil {
				return fmt.Errorf("%d issue(s) found: %w", len(issues), err)
			}
			fmt.Fprintln(out, "OK")
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newDescribeCmd(a *app) *cobra.Command {
	var (
		pf        paramFlags
		inputPath string
	)
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Summarize the SSV_Factors sheet of a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return fmt.Errorf("%w (--input)", errMissingInput)
			}
			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("open input file %q: %w", inputPath, err)
			}
			defer f.Close()
			src, err := ssvfill.ReadMatrixFrom(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workbook: %s\n%s", inputPath, ssvfill.Describe(src, pf.params(cmd, a)))
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input workbook containing the SSV_Factors sheet")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			addr := fmt.Sprintf(":%d", a.cfg.Server.Port)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("serving", zap.String("addr", addr))
			return server.New(a.cfg, a.logger).Run(ctx, addr)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides config)")
	return cmd
}
