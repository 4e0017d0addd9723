package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateFile string

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <resourceType> -f <file>",
	Short: "Apply a masked update to an asset",
	Long: `Apply a partial update. The payload file must carry the asset id and a
mask naming the fields to change.

Example payload:
  id: 67f3dafd-6b9a-46c1-ad5c-3d5b9d318a6e
  description: repainted
  mask:
    - description`,
	Args: cobra.ExactArgs(1),
	RunE: updateResource,
}

func updateResource(cmd *cobra.Command, args []string) error {
	base, err := resourcePath(args[0])
	if err != nil {
		return err
	}
	payload, err := loadPayloadFile(updateFile)
	if err != nil {
		return err
	}

	path := base
	// groups carry the id in the path
	if base == "/assets/groups" {
		id, ok := payload["id"].(string)
		if !ok || id == "" {
			return fmt.Errorf("group updates need an id in the payload file")
		}
		path = base + "/" + id
	}

	var rsp map[string]any
	if err := newClient().Put(path, payload, &rsp); err != nil {
		return err
	}
	return printResult(rsp)
}

func init() {
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "Path to the payload file")
	rootCmd.AddCommand(updateCmd)
}
