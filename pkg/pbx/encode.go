package pbx

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/opencollective/xcproj/pkg/plist"
)

// flowISA reports whether a kind renders its objects on a single line.
// Xcode writes build files and file references in flow style and everything
// else in block style.
func flowISA(isa ISA) bool {
	return isa == ISABuildFile || isa == ISAFileReference
}

// section is a group of same-kind objects, the unit the objects table is
// organized around on output.
type section struct {
	ISA     ISA
	Objects []Object
}

// sections groups the arena by kind, kinds sorted alphabetically and objects
// by reference, which is the canonical layout of the objects table.
func (d *Document) sections() []section {
	byISA := make(map[ISA][]Object)
	for _, obj := range d.objects {
		byISA[obj.ISA()] = append(byISA[obj.ISA()], obj)
	}
	isas := make([]ISA, 0, len(byISA))
	for isa := range byISA {
		isas = append(isas, isa)
	}
	slices.Sort(isas)

	out := make([]section, 0, len(isas))
	for _, isa := range isas {
		objs := byISA[isa]
		slices.SortFunc(objs, func(a, b Object) int {
			return strings.Compare(a.Reference(), b.Reference())
		})
		out = append(out, section{ISA: isa, Objects: objs})
	}
	return out
}

// Encode builds the document's complete value tree: version markers, classes,
// the objects table in canonical section order, and the annotated rootObject.
// Section banners and flow styling are print-time concerns and exist only in
// [Document.Marshal]; the tree carries the same entries in the same order.
// Encoding is total; dangling references degrade silently instead of
// failing.
func (d *Document) Encode() plist.Value {
	ann := d.annotations()
	objs := plist.NewDict()
	for _, sec := range d.sections() {
		for _, obj := range sec.Objects {
			objs.SetEntry(d.encodeObject(obj, ann))
		}
	}

	top := plist.NewDict()
	top.Set("archiveVersion", plist.String{Value: d.ArchiveVersion})
	top.Set("classes", d.classesValue())
	top.Set("objectVersion", plist.String{Value: d.ObjectVersion})
	top.Set("objects", objs)
	top.Set("rootObject", plist.String{
		Value:   d.RootObject,
		Comment: displayNameOf(d, d.RootObject),
	})
	return top
}

// Marshal renders the document as pbxproj text: the UTF-8 header, tab
// indentation, `/* Begin <kind> section */` banners around each group of
// objects, flow style for build files and file references, and a trailing
// newline. Output is deterministic; encoding the same document twice yields
// identical bytes.
func (d *Document) Marshal() []byte {
	ann := d.annotations()
	buf := make([]byte, 0, 1<<12)
	buf = append(buf, plist.Header...)
	buf = append(buf, "\n{\n"...)

	buf = plist.AppendEntry(buf, plist.Entry{Key: "archiveVersion", Value: plist.String{Value: d.ArchiveVersion}}, 1, false)
	buf = plist.AppendEntry(buf, plist.Entry{Key: "classes", Value: d.classesValue()}, 1, false)
	buf = plist.AppendEntry(buf, plist.Entry{Key: "objectVersion", Value: plist.String{Value: d.ObjectVersion}}, 1, false)

	secs := d.sections()
	if len(secs) == 0 {
		buf = append(buf, "\tobjects = {\n\t};\n"...)
	} else {
		buf = append(buf, "\tobjects = {\n"...)
		for _, sec := range secs {
			buf = append(buf, fmt.Sprintf("\n/* Begin %s section */\n", sec.ISA)...)
			flow := flowISA(sec.ISA)
			for _, obj := range sec.Objects {
				buf = appendObjectLine(buf, d.encodeObject(obj, ann), flow)
			}
			buf = append(buf, fmt.Sprintf("/* End %s section */\n", sec.ISA)...)
		}
		buf = append(buf, "\t};\n"...)
	}

	buf = plist.AppendEntry(buf, plist.Entry{Key: "rootObject", Value: plist.String{
		Value:   d.RootObject,
		Comment: displayNameOf(d, d.RootObject),
	}}, 1, false)
	buf = append(buf, "}\n"...)
	return buf
}

// Write renders the document to w.
func (d *Document) Write(w io.Writer) error {
	_, err := w.Write(d.Marshal())
	return err
}

// encodeObject encodes one object and overlays the owner-derived key comment
// where one exists.
func (d *Document) encodeObject(obj Object, ann map[string]string) plist.Entry {
	e := obj.Encode(d)
	if c, ok := ann[obj.Reference()]; ok {
		e.KeyComment = c
	}
	return e
}

// appendObjectLine renders one objects-table entry at its canonical two-tab
// depth. Flow entries collapse the whole dictionary onto the line.
func appendObjectLine(buf []byte, e plist.Entry, flow bool) []byte {
	if !flow {
		return plist.AppendEntry(buf, e, 2, false)
	}
	buf = append(buf, "\t\t"...)
	buf = append(buf, plist.Quote(e.Key)...)
	if e.KeyComment != "" {
		buf = append(buf, " /* "...)
		buf = append(buf, e.KeyComment...)
		buf = append(buf, " */"...)
	}
	buf = append(buf, " = "...)
	buf = plist.AppendValue(buf, e.Value, 2, true)
	buf = append(buf, ";\n"...)
	return buf
}

func (d *Document) classesValue() plist.Value {
	if d.Classes != nil {
		return d.Classes
	}
	return plist.NewDict()
}
