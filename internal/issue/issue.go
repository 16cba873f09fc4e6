// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	EnvNotFoundId Id = iota + 1
	EnvNotManagedId
	ToolNotFoundId
	ConfigLoadFailedId
	ConcreteEnvRequiredId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links shown under "See also"
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	envNotFoundIssue = &Issue{
		id: EnvNotFoundId,
		mdMsg: `
# Environment not found!

The requested isolated environment does not exist (or is corrupt).

## Things you can try:
- Install it first:
~~~
$ runtests --install -e 34
~~~

- List what lives under your environments root:
~~~
$ ls ~/.runtests/envs
~~~

- Check the 'envs_root' setting in your config file if you keep
  environments somewhere else.`,
	}

	envNotManagedIssue = &Issue{
		id: EnvNotManagedId,
		mdMsg: `
# Environment directory not managed by runtests!

A directory exists at the environment location, but it carries no
runtests manifest, so it was not created by 'runtests --install'.
Uninstall refuses to delete it.

## Things you can try:
- Remove the directory manually if you are sure it is disposable
- Point 'envs_root' at a directory dedicated to runtests`,
	}

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Check tool not found!

One of the external check tools could not be located on the PATH of the
active environment.

## Things you can try:
- Reinstall the environment so its dependencies are provisioned:
~~~
$ runtests --install -e <env>
~~~

- Override the tool command in your config file under the [tools] table
- Run with --envs default to use whatever is on your ambient PATH`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the runtests configuration file.

## Configuration file locations:
- Linux: ~/.config/runtests/config.toml
- macOS: ~/Library/Application Support/runtests/config.toml
- Windows: %APPDATA%\runtests\config.toml

## Things you can try:
- Check the TOML syntax of the file
- Remove the config file to fall back to defaults
- Override single values via RUNTESTS_* environment variables`,
	}

	concreteEnvRequiredIssue = &Issue{
		id: ConcreteEnvRequiredId,
		mdMsg: `
# A concrete environment identifier is required!

'--install' and '--uninstall' operate on specific environments; the
selectors "default" and "all" are not allowed here.

## Things you can try:
~~~
$ runtests --install -e 27
$ runtests --uninstall -e 26,27
~~~`,
	}

	issues = map[Id]*Issue{
		envNotFoundIssue.Id():         envNotFoundIssue,
		envNotManagedIssue.Id():       envNotManagedIssue,
		toolNotFoundIssue.Id():        toolNotFoundIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		concreteEnvRequiredIssue.Id(): concreteEnvRequiredIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
