package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/aetheric-oss/svc-assets/internal/common/httpx"
)

var (
	// Global flags
	serverURL  string
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "assets-cli",
	Short: "Assets CLI - a command line client for the assets gateway",
	Long: `Assets CLI is a command line client for the assets gateway.
It registers, inspects, updates and removes aircraft, vertiports,
vertipads and asset groups through the gateway's REST API.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:8000", "Base URL of the assets gateway")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if jsonOutput {
			kv := map[string]string{
				"error": err.Error(),
			}
			printJSON(kv)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newClient() *httpx.Client {
	return &httpx.Client{
		BaseURL: serverURL,
		Timeout: 15 * time.Second,
	}
}

func printResult(v any) error {
	if jsonOutput {
		return printJSON(v)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to format output: %v", err)
	}
	fmt.Print(string(out))
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to format JSON output: %v", err)
	}
	fmt.Println(string(out))
	return nil
}
