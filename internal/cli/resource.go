package cli

import (
	"fmt"
	"strings"
)

// resourcePath maps a CLI resource type to its collection path on the
// gateway.
func resourcePath(resourceType string) (string, error) {
	switch resourceType {
	case "aircraft":
		return "/assets/aircraft", nil
	case "vertiport", "vertiports":
		return "/assets/vertiports", nil
	case "vertipad", "vertipads":
		return "/assets/vertipads", nil
	case "group", "groups":
		return "/assets/groups", nil
	default:
		return "", fmt.Errorf("unknown resource type %q; expected aircraft, vertiport, vertipad or group", resourceType)
	}
}

// splitResourceArg splits "aircraft/<id>" style arguments.
func splitResourceArg(arg string) (resourceType, id string, err error) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", fmt.Errorf("invalid resource format. Expected <resourceType>/<id>")
	}
	return parts[0], parts[1], nil
}
