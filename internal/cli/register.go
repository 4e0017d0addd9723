package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var registerFile string

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register <resourceType> -f <file>",
	Short: "Register a new asset from a YAML or JSON file",
	Long: `Register a new asset. The payload is read from a YAML or JSON file.

Example:
  assets-cli register aircraft -f aircraft.yaml
  assets-cli register vertiport -f vertiport.json`,
	Args: cobra.ExactArgs(1),
	RunE: registerResource,
}

func registerResource(cmd *cobra.Command, args []string) error {
	base, err := resourcePath(args[0])
	if err != nil {
		return err
	}
	payload, err := loadPayloadFile(registerFile)
	if err != nil {
		return err
	}
	var rsp map[string]any
	if err := newClient().Post(base, payload, &rsp); err != nil {
		return err
	}
	return printResult(rsp)
}

// loadPayloadFile reads a YAML or JSON payload into a generic map.
func loadPayloadFile(path string) (map[string]any, error) {
	if path == "" {
		return nil, fmt.Errorf("a payload file is required; use -f <file>")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read payload file: %v", err)
	}
	var payload map[string]any
	if err := yaml.Unmarshal(content, &payload); err != nil {
		return nil, fmt.Errorf("unable to parse payload file: %v", err)
	}
	return payload, nil
}

func init() {
	registerCmd.Flags().StringVarP(&registerFile, "file", "f", "", "Path to the payload file")
	rootCmd.AddCommand(registerCmd)
}
