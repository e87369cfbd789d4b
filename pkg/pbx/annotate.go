package pbx

// annotations computes the objects-table key comments that need owner
// context, which the owned object cannot synthesize from its own fields:
// a configuration list is named after the project or target owning it, a
// build file after the phase containing it. Every other kind annotates
// itself through its Encode.
//
// Owners are scanned in reference order and the first claim wins, so the
// result is deterministic even for malformed graphs where two owners point
// at the same object. References that do not resolve, or resolve to an
// object of the wrong kind, contribute nothing.
func (d *Document) annotations() map[string]string {
	ann := make(map[string]string)

	claimList := func(ref string, owner ISA, name string) {
		if _, claimed := ann[ref]; claimed {
			return
		}
		if _, ok := d.objects[ref].(*XCConfigurationList); ok {
			ann[ref] = configListComment(owner, name)
		}
	}
	claimFile := func(ref, phaseName string) {
		if _, claimed := ann[ref]; claimed {
			return
		}
		bf, ok := d.objects[ref].(*PBXBuildFile)
		if !ok {
			return
		}
		if c := inPhaseComment(bf.DisplayName(d), phaseName); c != "" {
			ann[ref] = c
		}
	}

	for _, obj := range d.Objects() {
		switch o := obj.(type) {
		case *PBXProject:
			claimList(o.BuildConfigurationList, ISAProject, o.Name)
		case *PBXNativeTarget:
			claimList(o.BuildConfigurationList, ISANativeTarget, o.Name)
		case *PBXAggregateTarget:
			claimList(o.BuildConfigurationList, ISAAggregateTarget, o.Name)
		case *PBXLegacyTarget:
			claimList(o.BuildConfigurationList, ISALegacyTarget, o.Name)
		case *PBXSourcesBuildPhase:
			for _, f := range o.Files {
				claimFile(f, "Sources")
			}
		case *PBXFrameworksBuildPhase:
			for _, f := range o.Files {
				claimFile(f, "Frameworks")
			}
		case *PBXResourcesBuildPhase:
			for _, f := range o.Files {
				claimFile(f, "Resources")
			}
		case *PBXHeadersBuildPhase:
			for _, f := range o.Files {
				claimFile(f, "Headers")
			}
		case *PBXShellScriptBuildPhase:
			for _, f := range o.Files {
				claimFile(f, o.DisplayName(d))
			}
		case *PBXCopyFilesBuildPhase:
			for _, f := range o.Files {
				claimFile(f, o.DisplayName(d))
			}
		}
	}
	return ann
}
