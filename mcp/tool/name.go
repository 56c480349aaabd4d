package tool

import "strings"

// Name represents tool name
type Name string

// Service returns the action service in slash form
func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

// Method returns the action method
func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

func (t Name) String() string {
	return string(t)
}

// NewName new name
func NewName(service, name string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + name)
}

// Canonical normalises service/method, service.method and tool name forms to
// the tool name.
func Canonical(name string) string {
	if !strings.Contains(name, "-") {
		sep := strings.LastIndex(name, ".")
		if sep == -1 {
			sep = strings.LastIndex(name, "/")
		}
		if sep != -1 {
			name = name[:sep] + "-" + name[sep+1:]
		}
	}
	return strings.ReplaceAll(name, "/", "_")
}
