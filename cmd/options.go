package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON path or URL"`

	Convert   *ConvertCmd   `command:"convert"    description:"Convert a value to a registered type"`
	Types     *TypesCmd     `command:"types"      description:"List registered type converters"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all registered tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one MCP tool"`
	Exec      *ExecCmd      `command:"exec"       description:"Bind arguments and execute a tool"`
	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the registered tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "convert":
		o.Convert = &ConvertCmd{}
	case "types":
		o.Types = &TypesCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
