package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/carebalance/internal/balance"
	"github.com/gyeh/carebalance/internal/clipboard"
	"github.com/gyeh/carebalance/internal/exitcode"
	"github.com/gyeh/carebalance/internal/logging"
	"github.com/gyeh/carebalance/internal/report"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one snapshot and print the nursing note",
	RunE:  runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&cfg.InputPath, "input", "", "YAML snapshot file (flags override its values)")
	f.StringVar(&cfg.Format, "format", "text", "Output: text (note) or json (result + note)")
	f.BoolVar(&cfg.Copy, "copy", false, "Copy the note to the clipboard")

	in := &cfg.Input
	f.IntVar((*int)(&in.Period), "period", int(in.Period), "Observation period in hours: 6, 12 or 24")
	f.StringVar(&in.Weight, "weight", "", "Current weight (kg)")
	f.BoolVar(&in.ChronicDialysis, "chronic-dialysis", false, "Patient on chronic dialysis")
	f.StringVar(&in.DryWeight, "dry-weight", "", "Dry weight (kg), chronic dialysis only")
	f.StringVar(&in.SpO2, "spo2", "", "Current SpO2 (%)")

	f.BoolVar(&in.Fever, "fever", false, "Fever present")
	f.StringVar(&in.Temperature, "temperature", in.Temperature, "Body temperature (°C)")
	f.BoolVar(&in.FeverPersistent, "fever-persistent", false, "Fever lasting more than 24h")
	f.BoolVar(&in.Antipyretic, "antipyretic", false, "Antipyretic given")

	f.StringVar((*string)(&in.Ventilation), "ventilation", string(in.Ventilation), "none, o2, hfno, niv_cpap, niv_bipap, imv")
	f.StringVar(&in.FiO2, "fio2", "", "FiO2 (%), ventilation only")
	f.BoolVar(&in.Humidified, "humidified", false, "Humidified ventilation")

	f.StringVar((*string)(&in.SkinLoss), "skin-loss", string(in.SkinLoss), "none, moderate, severe")
	f.BoolVar(&in.Anuria, "anuria", false, "Patient is anuric")
	f.BoolVar(&in.Surgical, "surgical", false, "Surgical patient (counts stool, bleeding, fistula)")

	f.StringVar(&in.In.Oral, "in-oral", "", "Oral intake (mL in period)")
	f.StringVar(&in.In.Intravenous, "in-iv", "", "Intravenous intake (mL in period)")
	f.StringVar(&in.In.Enteral, "in-enteral", "", "Enteral intake (mL in period)")
	f.StringVar(&in.In.Flush, "in-flush", "", "Flush/irrigation (mL in period)")
	f.StringVar(&in.In.Other, "in-other", "", "Other intake (mL in period)")

	f.StringVar(&in.Out.Diuresis, "out-diuresis", "", "Diuresis (mL in period)")
	f.StringVar(&in.Out.Drains, "out-drains", "", "Drains (mL in period)")
	f.StringVar(&in.Out.Vomit, "out-vomit", "", "Vomit/gastric residual (mL in period)")
	f.StringVar(&in.Out.Aspirate, "out-aspirate", "", "Aspirate (mL in period)")
	f.StringVar(&in.Out.Other, "out-other", "", "Other output (mL in period)")
	f.StringVar(&in.Out.Stool, "out-stool", "", "Stool/stoma (mL in period), surgical only")
	f.StringVar(&in.Out.Bleeding, "out-bleeding", "", "Bleeding/losses (mL in period), surgical only")
	f.StringVar(&in.Out.Fistula, "out-fistula", "", "Fistula/enteric output (mL in period), surgical only")

	f.BoolVar(&in.Sweating, "sweating", false, "Profuse sweating")
	f.StringVar(&in.SweatingVolume, "sweating-volume", "", "Estimated sweating (mL in period)")

	f.StringVar((*string)(&in.ECT), "ect", string(in.ECT), "none, ihd, crrt, scuf, dp, ecmo, cpb, other")
	f.StringVar(&in.ECTNetRemoval, "ect-net-removal", "", "ECT net removal (mL in period)")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	log := logging.SetupLevel(cfg.LogFormat, cfg.LogLevel)

	if cfg.InputPath != "" {
		if err := cfg.LoadWithFlags(cfg.InputPath, cmd.Flags()); err != nil {
			log.Error().Err(err).Msg("failed to load snapshot")
			os.Exit(exitcode.ValidationError)
		}
	}
	// drop surgical-only values a snapshot file may carry for a non-surgical patient
	cfg.Input.SetSurgical(cfg.Input.Surgical)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	res := balance.Evaluate(&cfg.Input)
	note := report.Compose(&cfg.Input, res)

	log.Debug().
		Int("period_hours", res.PeriodHours).
		Int64("in_24h", res.In24h).
		Int64("out_24h", res.Out24h).
		Int64("clinical_balance", res.ClinicalBalance).
		Msg("snapshot evaluated")
	for _, a := range res.Alerts {
		log.Info().Str("alert", string(a.Code)).Msg(a.Message)
	}

	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		out := struct {
			Result any    `json:"result"`
			Report string `json:"report"`
		}{res, note}
		if err := enc.Encode(out); err != nil {
			log.Error().Err(err).Msg("failed to encode result")
			os.Exit(exitcode.WriteError)
		}
	default:
		fmt.Println(note)
	}

	if cfg.Copy {
		if err := clipboard.Copy(clipboard.System{}, note); err != nil {
			log.Error().Err(err).Msg("clipboard copy failed")
			fmt.Fprintln(os.Stderr, clipboard.FailureMessage)
			os.Exit(exitcode.ClipboardError)
		}
		fmt.Fprintln(os.Stderr, "note copied")
	}
	return nil
}
