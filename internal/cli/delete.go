package cli

import (
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <resourceType>/<id>",
	Short: "Delete an asset",
	Long: `Delete an asset by type and id.

Example:
  assets-cli delete aircraft/67f3dafd-6b9a-46c1-ad5c-3d5b9d318a6e`,
	Args: cobra.ExactArgs(1),
	RunE: deleteResource,
}

func deleteResource(cmd *cobra.Command, args []string) error {
	resourceType, id, err := splitResourceArg(args[0])
	if err != nil {
		return err
	}
	base, err := resourcePath(resourceType)
	if err != nil {
		return err
	}
	var rsp map[string]any
	if err := newClient().Delete(base+"/"+id, &rsp); err != nil {
		return err
	}
	return printResult(rsp)
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
