package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ksload/pkg/ksload"
)

// encodingNames lists the encodings offered for shell completion.
var encodingNames = []string{ksload.EncodingUTF8, ksload.EncodingLatin1}

// completeEncodings provides shell completion for --encoding values.
func completeEncodings(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, name := range encodingNames {
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeYAMLFiles lets the shell complete config file paths.
func completeYAMLFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}
