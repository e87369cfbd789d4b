package pbx

import (
	"slices"

	"github.com/opencollective/xcproj/pkg/plist"
)

// defaultBuildActionMask is the mask Xcode writes on every build phase.
const defaultBuildActionMask = 2147483647

// inPhaseComment builds the annotation for a build file: "<file> in <phase>".
// Either side may be unresolvable; the comment degrades rather than failing.
func inPhaseComment(file, phase string) string {
	switch {
	case file == "":
		return ""
	case phase == "":
		return file
	default:
		return file + " in " + phase
	}
}

// phaseFiles renders a phase's files array. Each element is a build-file
// reference annotated with "<file> in <phase>".
func phaseFiles(idx ReferenceIndex, refs []string, phaseName string) plist.Array {
	out := make(plist.Array, len(refs))
	for i, r := range refs {
		out[i] = plist.String{Value: r, Comment: inPhaseComment(displayNameOf(idx, r), phaseName)}
	}
	return out
}

// PBXSourcesBuildPhase compiles the target's source files.
type PBXSourcesBuildPhase struct {
	Ref string

	BuildActionMask                    int
	Files                              []string
	RunOnlyForDeploymentPostprocessing int
}

func decodePBXSourcesBuildPhase(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISASourcesBuildPhase, ref: ref, m: m}
	return &PBXSourcesBuildPhase{
		Ref:                                ref,
		BuildActionMask:                    r.flag("buildActionMask", defaultBuildActionMask),
		Files:                              r.strs("files"),
		RunOnlyForDeploymentPostprocessing: r.flag("runOnlyForDeploymentPostprocessing", 0),
	}, nil
}

func (p *PBXSourcesBuildPhase) Reference() string { return p.Ref }
func (p *PBXSourcesBuildPhase) ISA() ISA          { return ISASourcesBuildPhase }

func (p *PBXSourcesBuildPhase) DisplayName(ReferenceIndex) string { return "Sources" }

func (p *PBXSourcesBuildPhase) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISASourcesBuildPhase)})
	d.Set("buildActionMask", flagString(p.BuildActionMask))
	d.Set("files", phaseFiles(idx, p.Files, "Sources"))
	d.Set("runOnlyForDeploymentPostprocessing", flagString(p.RunOnlyForDeploymentPostprocessing))
	return plist.Entry{Key: p.Ref, KeyComment: "Sources", Value: d}
}

func (p *PBXSourcesBuildPhase) Equal(other Object) bool {
	o, ok := other.(*PBXSourcesBuildPhase)
	if !ok {
		return false
	}
	return p.Ref == o.Ref &&
		p.BuildActionMask == o.BuildActionMask &&
		slices.Equal(p.Files, o.Files) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing
}

// PBXFrameworksBuildPhase links frameworks and libraries.
type PBXFrameworksBuildPhase struct {
	Ref string

	BuildActionMask                    int
	Files                              []string
	RunOnlyForDeploymentPostprocessing int
}

func decodePBXFrameworksBuildPhase(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAFrameworksBuildPhase, ref: ref, m: m}
	return &PBXFrameworksBuildPhase{
		Ref:                                ref,
		BuildActionMask:                    r.flag("buildActionMask", defaultBuildActionMask),
		Files:                              r.strs("files"),
		RunOnlyForDeploymentPostprocessing: r.flag("runOnlyForDeploymentPostprocessing", 0),
	}, nil
}

func (p *PBXFrameworksBuildPhase) Reference() string { return p.Ref }
func (p *PBXFrameworksBuildPhase) ISA() ISA          { return ISAFrameworksBuildPhase }

func (p *PBXFrameworksBuildPhase) DisplayName(ReferenceIndex) string { return "Frameworks" }

func (p *PBXFrameworksBuildPhase) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAFrameworksBuildPhase)})
	d.Set("buildActionMask", flagString(p.BuildActionMask))
	d.Set("files", phaseFiles(idx, p.Files, "Frameworks"))
	d.Set("runOnlyForDeploymentPostprocessing", flagString(p.RunOnlyForDeploymentPostprocessing))
	return plist.Entry{Key: p.Ref, KeyComment: "Frameworks", Value: d}
}

func (p *PBXFrameworksBuildPhase) Equal(other Object) bool {
	o, ok := other.(*PBXFrameworksBuildPhase)
	if !ok {
		return false
	}
	return p.Ref == o.Ref &&
		p.BuildActionMask == o.BuildActionMask &&
		slices.Equal(p.Files, o.Files) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing
}

// PBXResourcesBuildPhase copies resources into the product bundle.
type PBXResourcesBuildPhase struct {
	Ref string

	BuildActionMask                    int
	Files                              []string
	RunOnlyForDeploymentPostprocessing int
}

func decodePBXResourcesBuildPhase(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAResourcesBuildPhase, ref: ref, m: m}
	return &PBXResourcesBuildPhase{
		Ref:                                ref,
		BuildActionMask:                    r.flag("buildActionMask", defaultBuildActionMask),
		Files:                              r.strs("files"),
		RunOnlyForDeploymentPostprocessing: r.flag("runOnlyForDeploymentPostprocessing", 0),
	}, nil
}

func (p *PBXResourcesBuildPhase) Reference() string { return p.Ref }
func (p *PBXResourcesBuildPhase) ISA() ISA          { return ISAResourcesBuildPhase }

func (p *PBXResourcesBuildPhase) DisplayName(ReferenceIndex) string { return "Resources" }

func (p *PBXResourcesBuildPhase) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAResourcesBuildPhase)})
	d.Set("buildActionMask", flagString(p.BuildActionMask))
	d.Set("files", phaseFiles(idx, p.Files, "Resources"))
	d.Set("runOnlyForDeploymentPostprocessing", flagString(p.RunOnlyForDeploymentPostprocessing))
	return plist.Entry{Key: p.Ref, KeyComment: "Resources", Value: d}
}

func (p *PBXResourcesBuildPhase) Equal(other Object) bool {
	o, ok := other.(*PBXResourcesBuildPhase)
	if !ok {
		return false
	}
	return p.Ref == o.Ref &&
		p.BuildActionMask == o.BuildActionMask &&
		slices.Equal(p.Files, o.Files) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing
}

// PBXHeadersBuildPhase installs headers, with visibility carried on the
// individual build files' settings.
type PBXHeadersBuildPhase struct {
	Ref string

	BuildActionMask                    int
	Files                              []string
	RunOnlyForDeploymentPostprocessing int
}

func decodePBXHeadersBuildPhase(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAHeadersBuildPhase, ref: ref, m: m}
	return &PBXHeadersBuildPhase{
		Ref:                                ref,
		BuildActionMask:                    r.flag("buildActionMask", defaultBuildActionMask),
		Files:                              r.strs("files"),
		RunOnlyForDeploymentPostprocessing: r.flag("runOnlyForDeploymentPostprocessing", 0),
	}, nil
}

func (p *PBXHeadersBuildPhase) Reference() string { return p.Ref }
func (p *PBXHeadersBuildPhase) ISA() ISA          { return ISAHeadersBuildPhase }

func (p *PBXHeadersBuildPhase) DisplayName(ReferenceIndex) string { return "Headers" }

func (p *PBXHeadersBuildPhase) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAHeadersBuildPhase)})
	d.Set("buildActionMask", flagString(p.BuildActionMask))
	d.Set("files", phaseFiles(idx, p.Files, "Headers"))
	d.Set("runOnlyForDeploymentPostprocessing", flagString(p.RunOnlyForDeploymentPostprocessing))
	return plist.Entry{Key: p.Ref, KeyComment: "Headers", Value: d}
}

func (p *PBXHeadersBuildPhase) Equal(other Object) bool {
	o, ok := other.(*PBXHeadersBuildPhase)
	if !ok {
		return false
	}
	return p.Ref == o.Ref &&
		p.BuildActionMask == o.BuildActionMask &&
		slices.Equal(p.Files, o.Files) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing
}

// PBXShellScriptBuildPhase runs a script during the build. The file-list
// fields appear only in newer project versions, so their presence is kept:
// nil slices stay off the wire, empty non-nil ones are written.
type PBXShellScriptBuildPhase struct {
	Ref string

	BuildActionMask                    int
	Files                              []string
	InputFileListPaths                 []string
	InputPaths                         []string
	Name                               *string
	OutputFileListPaths                []string
	OutputPaths                        []string
	RunOnlyForDeploymentPostprocessing int
	ShellPath                          string
	ShellScript                        *string
}

func decodePBXShellScriptBuildPhase(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAShellScriptBuildPhase, ref: ref, m: m}
	p := &PBXShellScriptBuildPhase{
		Ref:                                ref,
		BuildActionMask:                    r.flag("buildActionMask", defaultBuildActionMask),
		Files:                              r.strs("files"),
		InputPaths:                         r.strs("inputPaths"),
		Name:                               r.optStr("name"),
		OutputPaths:                        r.strs("outputPaths"),
		RunOnlyForDeploymentPostprocessing: r.flag("runOnlyForDeploymentPostprocessing", 0),
		ShellPath:                          r.str("shellPath", "/bin/sh"),
		ShellScript:                        r.optStr("shellScript"),
	}
	if _, ok := r.m["inputFileListPaths"]; ok {
		p.InputFileListPaths = r.strs("inputFileListPaths")
		if p.InputFileListPaths == nil {
			p.InputFileListPaths = []string{}
		}
	}
	if _, ok := r.m["outputFileListPaths"]; ok {
		p.OutputFileListPaths = r.strs("outputFileListPaths")
		if p.OutputFileListPaths == nil {
			p.OutputFileListPaths = []string{}
		}
	}
	return p, nil
}

func (p *PBXShellScriptBuildPhase) Reference() string { return p.Ref }
func (p *PBXShellScriptBuildPhase) ISA() ISA          { return ISAShellScriptBuildPhase }

func (p *PBXShellScriptBuildPhase) DisplayName(ReferenceIndex) string {
	if p.Name != nil {
		return *p.Name
	}
	return "ShellScript"
}

func (p *PBXShellScriptBuildPhase) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAShellScriptBuildPhase)})
	d.Set("buildActionMask", flagString(p.BuildActionMask))
	d.Set("files", phaseFiles(idx, p.Files, p.DisplayName(idx)))
	if p.InputFileListPaths != nil {
		d.Set("inputFileListPaths", plist.FromRaw(p.InputFileListPaths))
	}
	d.Set("inputPaths", plist.FromRaw(p.InputPaths))
	if p.Name != nil {
		d.Set("name", plist.String{Value: *p.Name})
	}
	if p.OutputFileListPaths != nil {
		d.Set("outputFileListPaths", plist.FromRaw(p.OutputFileListPaths))
	}
	d.Set("outputPaths", plist.FromRaw(p.OutputPaths))
	d.Set("runOnlyForDeploymentPostprocessing", flagString(p.RunOnlyForDeploymentPostprocessing))
	d.Set("shellPath", plist.String{Value: p.ShellPath})
	if p.ShellScript != nil {
		d.Set("shellScript", plist.String{Value: *p.ShellScript})
	}
	return plist.Entry{Key: p.Ref, KeyComment: p.DisplayName(idx), Value: d}
}

func (p *PBXShellScriptBuildPhase) Equal(other Object) bool {
	o, ok := other.(*PBXShellScriptBuildPhase)
	if !ok {
		return false
	}
	return p.Ref == o.Ref &&
		p.BuildActionMask == o.BuildActionMask &&
		slices.Equal(p.Files, o.Files) &&
		eqStrsPresence(p.InputFileListPaths, o.InputFileListPaths) &&
		slices.Equal(p.InputPaths, o.InputPaths) &&
		eqPtr(p.Name, o.Name) &&
		eqStrsPresence(p.OutputFileListPaths, o.OutputFileListPaths) &&
		slices.Equal(p.OutputPaths, o.OutputPaths) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing &&
		p.ShellPath == o.ShellPath &&
		eqPtr(p.ShellScript, o.ShellScript)
}

// PBXCopyFilesBuildPhase copies files into a destination inside the product,
// selected by DstSubfolderSpec (an integer code) plus the DstPath suffix.
type PBXCopyFilesBuildPhase struct {
	Ref string

	BuildActionMask                    int
	DstPath                            string
	DstSubfolderSpec                   int
	Files                              []string
	Name                               *string
	RunOnlyForDeploymentPostprocessing int
}

func decodePBXCopyFilesBuildPhase(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISACopyFilesBuildPhase, ref: ref, m: m}
	dstPath, err := r.reqStr("dstPath")
	if err != nil {
		return nil, err
	}
	dstSubfolderSpec, err := r.reqFlag("dstSubfolderSpec")
	if err != nil {
		return nil, err
	}
	return &PBXCopyFilesBuildPhase{
		Ref:                                ref,
		BuildActionMask:                    r.flag("buildActionMask", defaultBuildActionMask),
		DstPath:                            dstPath,
		DstSubfolderSpec:                   dstSubfolderSpec,
		Files:                              r.strs("files"),
		Name:                               r.optStr("name"),
		RunOnlyForDeploymentPostprocessing: r.flag("runOnlyForDeploymentPostprocessing", 0),
	}, nil
}

func (p *PBXCopyFilesBuildPhase) Reference() string { return p.Ref }
func (p *PBXCopyFilesBuildPhase) ISA() ISA          { return ISACopyFilesBuildPhase }

func (p *PBXCopyFilesBuildPhase) DisplayName(ReferenceIndex) string {
	if p.Name != nil {
		return *p.Name
	}
	return "CopyFiles"
}

func (p *PBXCopyFilesBuildPhase) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISACopyFilesBuildPhase)})
	d.Set("buildActionMask", flagString(p.BuildActionMask))
	d.Set("dstPath", plist.String{Value: p.DstPath})
	d.Set("dstSubfolderSpec", flagString(p.DstSubfolderSpec))
	d.Set("files", phaseFiles(idx, p.Files, p.DisplayName(idx)))
	if p.Name != nil {
		d.Set("name", plist.String{Value: *p.Name})
	}
	d.Set("runOnlyForDeploymentPostprocessing", flagString(p.RunOnlyForDeploymentPostprocessing))
	return plist.Entry{Key: p.Ref, KeyComment: p.DisplayName(idx), Value: d}
}

func (p *PBXCopyFilesBuildPhase) Equal(other Object) bool {
	o, ok := other.(*PBXCopyFilesBuildPhase)
	if !ok {
		return false
	}
	return p.Ref == o.Ref &&
		p.BuildActionMask == o.BuildActionMask &&
		p.DstPath == o.DstPath &&
		p.DstSubfolderSpec == o.DstSubfolderSpec &&
		slices.Equal(p.Files, o.Files) &&
		eqPtr(p.Name, o.Name) &&
		p.RunOnlyForDeploymentPostprocessing == o.RunOnlyForDeploymentPostprocessing
}
