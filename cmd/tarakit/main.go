package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tarakit/tarakit/internal/modelfile"
	"github.com/tarakit/tarakit/pkg/assessment"
	"github.com/tarakit/tarakit/pkg/risk"
	"github.com/tarakit/tarakit/pkg/scale"
	"github.com/tarakit/tarakit/pkg/stride"
)

// version is overridden by goreleaser via -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile      string
	outputFormat string
	verbose      bool

	logger = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tarakit",
	Short: "ISO/SAE 21434 TARA scoring engine",
	Long: `tarakit computes standardized cybersecurity risk ratings for automotive
E/E architecture components: STRIDE threat enumeration, impact and
attack-feasibility scoring, risk-matrix classification and CAL assignment.

Assets, damage scenarios and attack paths are described in a YAML model
file; see 'tarakit assess --help' for the expected layout.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(home + "/.tarakit")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
		viper.SetEnvPrefix("tarakit")
		viper.AutomaticEnv()
		_ = viper.ReadInConfig()

		if !cmd.Flags().Changed("format") {
			if f := viper.GetString("format"); f != "" {
				outputFormat = f
			}
		}
		if !verbose {
			verbose = viper.GetBool("verbose")
		}
		if verbose {
			logger, _ = zap.NewDevelopment()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.tarakit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(threatsCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(versionCmd)
}

// ── threats ──────────────────────────────────────────────────────────────────

var threatsCmd = &cobra.Command{
	Use:   "threats <model.yaml>",
	Short: "Enumerate STRIDE threats for every asset in a model file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThreats,
}

func runThreats(cmd *cobra.Command, args []string) error {
	model, err := modelfile.Load(args[0])
	if err != nil {
		return err
	}

	engine := assessment.NewEngine(logger)
	var threats []stride.Threat
	for _, asset := range model.EngineAssets() {
		threats = append(threats, engine.Threats(asset)...)
	}

	if outputFormat == "json" {
		return printJSON(threats)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ASSET\tCATEGORY\tTHREAT")
	for _, t := range threats {
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.AssetID, t.Category, t.Name)
	}
	return w.Flush()
}

// ── assess ───────────────────────────────────────────────────────────────────

// assessRow holds the outcome of one scenario assessment.
type assessRow struct {
	index  int
	id     string
	asset  stride.Asset
	result *assessment.Result
	err    error
}

var assessCmd = &cobra.Command{
	Use:   "assess <model.yaml>",
	Short: "Run a risk assessment for every scenario in a model file",
	Long: `Assess evaluates every scenario of the model file against its asset and
prints one row per scenario. Scenarios are evaluated concurrently and
reported in declaration order.

Model file layout:

  title: Example item
  assets:
    - id: 1
      name: Telematics Control Unit
      type: telematics_unit
  scenarios:
    - asset: 1
      damage: {safety: moderate, financial: major, operational: moderate, privacy: severe}
      attack: {expertise: expert, elapsed_time: six_months, equipment: specialized, knowledge: restricted}`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func runAssess(cmd *cobra.Command, args []string) error {
	model, err := modelfile.Load(args[0])
	if err != nil {
		return err
	}

	engine := assessment.NewEngine(logger)

	// Evaluate all scenarios concurrently; every call is pure.
	resultsCh := make(chan assessRow, len(model.Scenarios))
	for i, sc := range model.Scenarios {
		i, sc := i, sc
		go func() {
			asset, _ := model.AssetByID(sc.Asset) // verified by the loader
			result, err := engine.Evaluate(asset, sc.Damage, sc.Attack)
			resultsCh <- assessRow{
				index:  i,
				id:     uuid.NewString(),
				asset:  asset,
				result: result,
				err:    err,
			}
		}()
	}

	// Collect in declaration order.
	ordered := make([]assessRow, len(model.Scenarios))
	for range model.Scenarios {
		r := <-resultsCh
		ordered[r.index] = r
	}

	var failed bool
	for _, r := range ordered {
		if r.err != nil {
			failed = true
		}
	}

	if outputFormat == "json" {
		if err := printAssessJSON(ordered); err != nil {
			return err
		}
	} else if err := printAssessText(ordered); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("one or more scenarios failed to evaluate")
	}
	return nil
}

func printAssessJSON(rows []assessRow) error {
	type jsonRow struct {
		RunID      string             `json:"run_id"`
		AssetID    int                `json:"asset_id"`
		AssetName  string             `json:"asset_name"`
		Assessment *assessment.Result `json:"assessment,omitempty"`
		Error      string             `json:"error,omitempty"`
	}
	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		out[i] = jsonRow{
			RunID:      r.id,
			AssetID:    r.asset.ID,
			AssetName:  r.asset.Name,
			Assessment: r.result,
		}
		if r.err != nil {
			out[i].Error = r.err.Error()
		}
	}
	return printJSON(out)
}

func printAssessText(rows []assessRow) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ASSET\tIMPACT\tLIKELIHOOD\tRISK\tVALUE\tCAL")
	for _, r := range rows {
		if r.err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", r.asset.Name, r.err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.asset.Name, r.result.Impact, r.result.Likelihood,
			r.result.RiskLevel, r.result.RiskValue, r.result.CAL)
	}
	return w.Flush()
}

// ── matrix ───────────────────────────────────────────────────────────────────

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the risk matrix with the CAL required per cell",
	Args:  cobra.NoArgs,
	RunE:  runMatrix,
}

func runMatrix(cmd *cobra.Command, args []string) error {
	impacts := []scale.Impact{scale.Negligible, scale.Minor, scale.Moderate, scale.Major, scale.Severe}
	likelihoods := []scale.Likelihood{scale.LikelihoodLow, scale.LikelihoodMedium, scale.LikelihoodHigh, scale.LikelihoodVeryHigh}

	if outputFormat == "json" {
		type cell struct {
			Impact     scale.Impact     `json:"impact"`
			Likelihood scale.Likelihood `json:"likelihood"`
			RiskLevel  scale.RiskLevel  `json:"risk_level"`
			RiskValue  int              `json:"risk_value"`
			CAL        scale.CAL        `json:"cal"`
		}
		var cells []cell
		for _, i := range impacts {
			for _, l := range likelihoods {
				level, value := risk.Calculate(i, l)
				cells = append(cells, cell{i, l, level, value, risk.DetermineCAL(value)})
			}
		}
		return printJSON(cells)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "IMPACT")
	for _, l := range likelihoods {
		fmt.Fprintf(w, "\t%s", l)
	}
	fmt.Fprintln(w)
	for _, i := range impacts {
		fmt.Fprintf(w, "%s", i)
		for _, l := range likelihoods {
			level, value := risk.Calculate(i, l)
			fmt.Fprintf(w, "\t%s(%d)/%s", level, value, risk.DetermineCAL(value))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// ── version ──────────────────────────────────────────────────────────────────

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tarakit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tarakit", version)
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
