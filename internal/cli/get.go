package cli

import (
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <resourceType>[/<id>]",
	Short: "Get one resource by id, or list a collection",
	Long: `Get a resource by type and id, or list a whole collection when no id
is given.

Example:
  assets-cli get aircraft
  assets-cli get aircraft/67f3dafd-6b9a-46c1-ad5c-3d5b9d318a6e
  assets-cli get groups/c9b2f1d0-5a3e-4f6b-8d7c-123456789abc`,
	Args: cobra.ExactArgs(1),
	RunE: getResource,
}

func getResource(cmd *cobra.Command, args []string) error {
	path := args[0]
	resourceType, id, err := splitResourceArg(path)
	if err != nil {
		// no id: list the collection
		base, perr := resourcePath(path)
		if perr != nil {
			return perr
		}
		var list map[string]any
		if err := newClient().Get(base, &list); err != nil {
			return err
		}
		return printResult(list)
	}

	base, err := resourcePath(resourceType)
	if err != nil {
		return err
	}
	var resource map[string]any
	if err := newClient().Get(base+"/"+id, &resource); err != nil {
		return err
	}
	return printResult(resource)
}

func init() {
	rootCmd.AddCommand(getCmd)
}
