// Package compiler carries completed console input over to a real
// C-family compiler: it models the front-end's header search options,
// renders them as command-line flags, and runs the configured compiler
// with a statement on standard input.
package compiler

import (
	"fmt"
	"io"
)

// IncludeGroup classifies a header search entry the way the front-end
// does. The group decides which flag introduces the entry's path.
type IncludeGroup int

const (
	GroupQuoted IncludeGroup = iota
	GroupAngled
	GroupSystem
	GroupIndexHeaderMap
	GroupCSystem
	GroupExternCSystem
	GroupCXXSystem
	GroupObjCSystem
	GroupObjCXXSystem
	GroupAfter
)

var includeGroupNames = map[IncludeGroup]string{
	GroupQuoted:         "Quoted",
	GroupAngled:         "Angled",
	GroupSystem:         "System",
	GroupIndexHeaderMap: "IndexHeaderMap",
	GroupCSystem:        "CSystem",
	GroupExternCSystem:  "ExternCSystem",
	GroupCXXSystem:      "CXXSystem",
	GroupObjCSystem:     "ObjCSystem",
	GroupObjCXXSystem:   "ObjCXXSystem",
	GroupAfter:          "After",
}

func (g IncludeGroup) String() string {
	if name, ok := includeGroupNames[g]; ok {
		return name
	}
	return "Unknown"
}

// systemGroup reports whether entries of this group are part of the
// system search path, dropped when system paths are excluded.
func (g IncludeGroup) systemGroup() bool {
	switch g {
	case GroupSystem, GroupIndexHeaderMap, GroupCSystem, GroupExternCSystem,
		GroupCXXSystem, GroupObjCSystem, GroupObjCXXSystem:
		return true
	}
	return false
}

type IncludeEntry struct {
	Path        string
	Group       IncludeGroup
	IsFramework bool
}

// IncludeOptions mirrors the slice of the front-end's header search
// state the console cares about.
type IncludeOptions struct {
	Sysroot     string
	UserEntries []IncludeEntry
	ResourceDir string

	ModuleCachePath string

	UseStandardSystemIncludes bool
	UseStandardCXXIncludes    bool
	UseLibcxx                 bool
	Verbose                   bool
}

// NewIncludeOptions returns options matching the front-end defaults: a
// bare sysroot and the standard include directories enabled.
func NewIncludeOptions() *IncludeOptions {
	return &IncludeOptions{
		Sysroot:                   "/",
		UseStandardSystemIncludes: true,
		UseStandardCXXIncludes:    true,
	}
}

// AddPath appends a plain angled include directory.
func (o *IncludeOptions) AddPath(path string) {
	o.UserEntries = append(o.UserEntries, IncludeEntry{Path: path, Group: GroupAngled})
}

// Flags renders the options as compiler command-line arguments.
// withSystem keeps the system search entries; withFlags emits the flag
// words themselves, otherwise only the bare paths are produced.
func (o *IncludeOptions) Flags(withSystem, withFlags bool) []string {
	var out []string

	if withFlags && o.Sysroot != "/" {
		out = append(out, "-isysroot", o.Sysroot)
	}

	for _, e := range o.UserEntries {
		if e.IsFramework && e.Group != GroupAngled {
			panic(fmt.Sprintf("compiler: framework entry %q in group %v", e.Path, e.Group))
		}
		if !withSystem && e.Group.systemGroup() {
			continue
		}
		if withFlags {
			switch e.Group {
			case GroupAfter:
				out = append(out, "-idirafter")
			case GroupQuoted:
				out = append(out, "-iquote")
			case GroupSystem:
				out = append(out, "-isystem")
			case GroupIndexHeaderMap:
				out = append(out, "-index-header-map")
				if e.IsFramework {
					out = append(out, "-F")
				} else {
					out = append(out, "-I")
				}
			case GroupCSystem:
				out = append(out, "-c-isystem")
			case GroupExternCSystem:
				out = append(out, "-extern-c-isystem")
			case GroupCXXSystem:
				out = append(out, "-cxx-isystem")
			case GroupObjCSystem:
				out = append(out, "-objc-isystem")
			case GroupObjCXXSystem:
				out = append(out, "-objcxx-isystem")
			case GroupAngled:
				if e.IsFramework {
					out = append(out, "-F")
				} else {
					out = append(out, "-I")
				}
			}
		}
		out = append(out, e.Path)
	}

	if withSystem && o.ResourceDir != "" {
		if withFlags {
			out = append(out, "-resource-dir")
		}
		out = append(out, o.ResourceDir)
	}
	if withSystem && withFlags && o.ModuleCachePath != "" {
		out = append(out, "-fmodule-cache-path", o.ModuleCachePath)
	}
	if withSystem && withFlags && !o.UseStandardSystemIncludes {
		out = append(out, "-nostdinc")
	}
	if withSystem && withFlags && !o.UseStandardCXXIncludes {
		out = append(out, "-nostdinc++")
	}
	if withSystem && withFlags && o.UseLibcxx {
		out = append(out, "-stdlib=libc++")
	}
	if withSystem && withFlags && o.Verbose {
		out = append(out, "-v")
	}

	return out
}

// Paths returns just the search directories, without flag words and
// without the system entries.
func (o *IncludeOptions) Paths() []string {
	return o.Flags(false, false)
}

// Dump writes the rendered arguments to w, one per line.
func (o *IncludeOptions) Dump(w io.Writer, withSystem, withFlags bool) {
	for _, arg := range o.Flags(withSystem, withFlags) {
		fmt.Fprintln(w, arg)
	}
}
