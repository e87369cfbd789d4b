package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencollective/xcproj/pkg/pbx"
	"github.com/opencollective/xcproj/pkg/targetgraph"
)

// checkCommand creates the check command running structural diagnostics.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <project>",
		Short: "Run structural diagnostics on a project file",
		Long: `Run structural diagnostics on a project file.

check reports references that resolve to no object, dependency cycles
between targets, files added to the same build phase twice, and a missing or
mistyped root project. It inspects the object graph only; build settings are
not validated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0])
		},
	}

	return cmd
}

func (c *CLI) runCheck(path string) error {
	doc, err := c.loadDocument(path)
	if err != nil {
		return err
	}

	findings := checkDocument(doc)
	if len(findings) == 0 {
		printSuccess("No problems found")
		printDetail("checked %d objects", doc.Len())
		printNextStep("Render the dependency graph", appName+" graph "+path)
		return nil
	}

	for _, finding := range findings {
		printError("%s", finding)
	}
	return fmt.Errorf("%d problem(s) found", len(findings))
}

// checkDocument runs every structural check and returns human-readable
// findings. Objects are visited in reference order, so the output is stable
// for a given file.
func checkDocument(doc *pbx.Document) []string {
	var findings []string
	findings = append(findings, checkRoot(doc)...)
	findings = append(findings, checkDangling(doc)...)
	findings = append(findings, checkTargetCycles(doc)...)
	findings = append(findings, checkDuplicateBuildFiles(doc)...)
	return findings
}

// checkRoot verifies the document has a resolvable root project.
func checkRoot(doc *pbx.Document) []string {
	if _, err := doc.RootProject(); err != nil {
		return []string{fmt.Sprintf("root: %v", err)}
	}
	return nil
}

// checkDangling reports modeled references that do not resolve.
func checkDangling(doc *pbx.Document) []string {
	var findings []string
	for _, obj := range doc.Objects() {
		for _, ref := range objectRefs(doc, obj) {
			if _, ok := doc.Lookup(ref); !ok {
				findings = append(findings,
					fmt.Sprintf("%s %s: dangling reference %s", obj.ISA(), obj.Reference(), ref))
			}
		}
	}
	return findings
}

// checkTargetCycles reports dependency cycles between targets.
func checkTargetCycles(doc *pbx.Document) []string {
	g, err := targetgraph.Build(doc)
	if err != nil {
		return []string{fmt.Sprintf("target graph: %v", err)}
	}
	if err := g.Validate(); err != nil {
		return []string{err.Error()}
	}
	return nil
}

// checkDuplicateBuildFiles reports files added to one phase more than once,
// either as the same build file listed twice or as two build files
// referencing the same file.
func checkDuplicateBuildFiles(doc *pbx.Document) []string {
	var findings []string
	for _, obj := range doc.Objects() {
		files, kind := phaseFiles(obj)
		if len(files) == 0 {
			continue
		}

		seen := make(map[string]string) // resolved file ref -> first build file ref
		for _, buildFileRef := range files {
			key := buildFileRef
			if bfObj, ok := doc.Lookup(buildFileRef); ok {
				if bf, ok := bfObj.(*pbx.PBXBuildFile); ok && bf.FileRef != nil {
					key = *bf.FileRef
				}
			}
			if first, dup := seen[key]; dup {
				findings = append(findings,
					fmt.Sprintf("%s %s: %s and %s add the same file", kind, obj.Reference(), first, buildFileRef))
				continue
			}
			seen[key] = buildFileRef
		}
	}
	return findings
}

// phaseFiles returns a build phase's files list and kind, nil for non-phase
// objects.
func phaseFiles(obj pbx.Object) ([]string, pbx.ISA) {
	switch p := obj.(type) {
	case *pbx.PBXSourcesBuildPhase:
		return p.Files, pbx.ISASourcesBuildPhase
	case *pbx.PBXFrameworksBuildPhase:
		return p.Files, pbx.ISAFrameworksBuildPhase
	case *pbx.PBXResourcesBuildPhase:
		return p.Files, pbx.ISAResourcesBuildPhase
	case *pbx.PBXHeadersBuildPhase:
		return p.Files, pbx.ISAHeadersBuildPhase
	case *pbx.PBXCopyFilesBuildPhase:
		return p.Files, pbx.ISACopyFilesBuildPhase
	case *pbx.PBXShellScriptBuildPhase:
		return p.Files, pbx.ISAShellScriptBuildPhase
	}
	return nil, ""
}

// objectRefs lists the outgoing references of one object. Unknown kinds
// contribute nothing: their fields cannot be told apart from plain strings.
// A container proxy's remote id counts only when the proxy points into this
// document, i.e. its container portal is the root project.
func objectRefs(doc *pbx.Document, obj pbx.Object) []string {
	var refs []string
	add := func(rs ...string) {
		for _, r := range rs {
			if r != "" {
				refs = append(refs, r)
			}
		}
	}
	addOpt := func(p *string) {
		if p != nil {
			add(*p)
		}
	}

	switch o := obj.(type) {
	case *pbx.PBXProject:
		add(o.BuildConfigurationList, o.MainGroup)
		addOpt(o.ProductRefGroup)
		add(o.Targets...)
		for _, entry := range o.ProjectReferences {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if s, ok := m["ProductGroup"].(string); ok {
				add(s)
			}
			if s, ok := m["ProjectRef"].(string); ok {
				add(s)
			}
		}
	case *pbx.PBXNativeTarget:
		add(o.BuildConfigurationList)
		add(o.BuildPhases...)
		add(o.BuildRules...)
		add(o.Dependencies...)
		addOpt(o.ProductReference)
	case *pbx.PBXAggregateTarget:
		add(o.BuildConfigurationList)
		add(o.BuildPhases...)
		add(o.Dependencies...)
	case *pbx.PBXLegacyTarget:
		add(o.BuildConfigurationList)
		add(o.BuildPhases...)
		add(o.Dependencies...)
	case *pbx.PBXGroup:
		add(o.Children...)
	case *pbx.PBXVariantGroup:
		add(o.Children...)
	case *pbx.PBXBuildFile:
		addOpt(o.FileRef)
		addOpt(o.ProductRef)
	case *pbx.PBXSourcesBuildPhase:
		add(o.Files...)
	case *pbx.PBXFrameworksBuildPhase:
		add(o.Files...)
	case *pbx.PBXResourcesBuildPhase:
		add(o.Files...)
	case *pbx.PBXHeadersBuildPhase:
		add(o.Files...)
	case *pbx.PBXCopyFilesBuildPhase:
		add(o.Files...)
	case *pbx.PBXShellScriptBuildPhase:
		add(o.Files...)
	case *pbx.PBXTargetDependency:
		addOpt(o.Target)
		addOpt(o.TargetProxy)
	case *pbx.PBXContainerItemProxy:
		add(o.ContainerPortal)
		if o.ContainerPortal == doc.RootObject && o.RemoteGlobalIDString != nil {
			add(*o.RemoteGlobalIDString)
		}
	case *pbx.XCBuildConfiguration:
		addOpt(o.BaseConfigurationReference)
	case *pbx.XCConfigurationList:
		add(o.BuildConfigurations...)
	}
	return refs
}
