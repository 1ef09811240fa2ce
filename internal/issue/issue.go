// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	NameUnresolvedId Id = iota + 1
	AccessorNotFoundId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	nameUnresolvedIssue = &Issue{
		id: NameUnresolvedId,
		mdMsg: `
# Folder root not resolved!

No configuration source holds a value for this name. The resolver tried
the settings store first and the environment second, with the name as
given, ALL-UPPERCASE, and all-lowercase.

## Things you can try:
- Set an environment variable before running:
~~~
$ export MYDATA=/path/to/data
~~~

- Or add the key to the [settings] table of your config file:
~~~toml
[settings]
MYDATA = "/path/to/data"
~~~

- Or pass an explicit root so no resolution happens:
~~~
$ folderfun path MyData --root /path/to/data
~~~`,
	}

	accessorNotFoundIssue = &Issue{
		id: AccessorNotFoundId,
		mdMsg: `
# Folder function not defined!

No folder function is registered under the requested accessor name.
Accessor names are always the fixed prefix "ff" plus the name used at
definition time, with its casing preserved ("In" becomes "ffIn").

## Things you can try:
- List what is currently defined:
~~~
$ folderfun list
~~~

- Check for typos, including casing, in the accessor name
- Declare the folder in your config file:
~~~toml
[folders.In]
root = "/data/raw"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the folderfun configuration file.

## Configuration file locations:
- Linux: ~/.config/folderfun/config.toml
- macOS: ~/Library/Application Support/folderfun/config.toml
- Windows: %APPDATA%\folderfun\config.toml
- Current directory: folderfun.toml

## Things you can try:
- Create a starter configuration:
~~~
$ folderfun config init
~~~

- Check the TOML syntax of the existing file

## Example configuration:
~~~toml
[settings]
DATA = "/srv/data"

[folders.In]
root = "/data/raw"

[folders.Proc]
var = "DATA"
postpend = "processed"
~~~`,
	}

	issues = map[Id]*Issue{
		nameUnresolvedIssue.Id():   nameUnresolvedIssue,
		accessorNotFoundIssue.Id(): accessorNotFoundIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id() - b.Id()) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
