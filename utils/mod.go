package utils

import "strings"

// ExpandRepeated rewrites stacked short flags such as -vvv into -v -v -v so
// the flag package can count them. Arguments after "--" are left alone.
func ExpandRepeated(args []string, name string) []string {
	expanded := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(expanded, args[i:]...)
		}
		stacked, ok := strings.CutPrefix(arg, "-")
		if ok && !strings.HasPrefix(stacked, "-") &&
			len(stacked) > len(name) && stacked == strings.Repeat(name, len(stacked)/len(name)) {
			for range len(stacked) / len(name) {
				expanded = append(expanded, "-"+name)
			}
			continue
		}
		expanded = append(expanded, arg)
	}
	return expanded
}
