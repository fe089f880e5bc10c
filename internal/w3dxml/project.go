package w3dxml

import (
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/vk/scenegridgo/internal/scene"
)

// EncodeScene renders a scene as a complete project document.
func EncodeScene(s *scene.Scene) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("W3DProject")

	objects := root.CreateElement("ObjectRoot")
	for _, o := range s.Objects() {
		EncodeObject(objects, o)
	}
	groups := root.CreateElement("GroupRoot")
	for _, name := range s.Groups() {
		el := groups.CreateElement("Group")
		el.CreateAttr("name", name)
		for _, member := range s.GroupMembers(name) {
			el.CreateElement("ObjectRef").CreateAttr("name", member)
		}
	}
	timelines := root.CreateElement("TimelineRoot")
	for _, tl := range s.Timelines() {
		EncodeTimeline(timelines, tl)
	}
	triggers := root.CreateElement("TriggerRoot")
	for _, rt := range s.Triggers() {
		EncodeTrigger(triggers, rt)
	}
	return doc
}

// DecodeScene rebuilds a scene from a project document. Record order follows
// document order, so recompiling a round-tripped scene yields the same
// graphs.
func DecodeScene(doc *etree.Document) (*scene.Scene, error) {
	root := doc.SelectElement("W3DProject")
	if root == nil {
		return nil, malformed("document", "missing W3DProject root")
	}

	s := scene.New()
	if objects := root.SelectElement("ObjectRoot"); objects != nil {
		for _, el := range objects.SelectElements("Object") {
			o, err := DecodeObject(el)
			if err != nil {
				return nil, err
			}
			if err := s.AddObject(o); err != nil {
				return nil, err
			}
		}
	}
	if groups := root.SelectElement("GroupRoot"); groups != nil {
		for _, el := range groups.SelectElements("Group") {
			name := el.SelectAttrValue("name", "")
			if name == "" {
				return nil, malformed("Group", "missing name attribute")
			}
			var members []string
			for _, ref := range el.SelectElements("ObjectRef") {
				member := ref.SelectAttrValue("name", "")
				if member == "" {
					return nil, malformed("ObjectRef", "missing name attribute")
				}
				members = append(members, member)
			}
			if err := s.AddGroup(name, members); err != nil {
				return nil, err
			}
		}
	}
	if timelines := root.SelectElement("TimelineRoot"); timelines != nil {
		for _, el := range timelines.SelectElements("Timeline") {
			tl, err := DecodeTimeline(el)
			if err != nil {
				return nil, err
			}
			if err := s.AddTimeline(tl); err != nil {
				return nil, err
			}
		}
	}
	if triggers := root.SelectElement("TriggerRoot"); triggers != nil {
		for _, el := range triggers.SelectElements("EventTrigger") {
			rt, err := DecodeTrigger(el)
			if err != nil {
				return nil, err
			}
			if err := s.AddTrigger(rt); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Write renders the scene to w with two-space indentation.
func Write(s *scene.Scene, w io.Writer) error {
	doc := EncodeScene(s)
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// Read loads a scene from r.
func Read(r io.Reader) (*scene.Scene, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return DecodeScene(doc)
}

// LoadFile loads a scene from a project file on disk.
func LoadFile(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// SaveFile writes a scene to a project file on disk.
func SaveFile(s *scene.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
