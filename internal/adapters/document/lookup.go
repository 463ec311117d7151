package document

import "github.com/beevik/etree"

// Element tags of the project document.
const (
	tagComposition = "Composition"
	tagLayers      = "Layers"
	tagLayer       = "Layer"
	tagProperty    = "Property"
	tagExpression  = "Expression"

	attrName = "name"
	attrType = "type"
)

// FindWithFallback returns the first child of parent with the given tag and
// name attribute, looking first among children in namespace ns and then
// among children with no namespace. An empty name matches any element.
func FindWithFallback(parent *etree.Element, ns, tag, name string) *etree.Element {
	if parent == nil {
		return nil
	}
	for _, space := range []string{ns, ""} {
		for _, child := range parent.ChildElements() {
			if child.Tag != tag || child.NamespaceURI() != space {
				continue
			}
			if name == "" || child.SelectAttrValue(attrName, "") == name {
				return child
			}
		}
		if ns == "" {
			break
		}
	}
	return nil
}

// FindAllWithFallback returns every child of parent with the given tag in
// namespace ns, or the bare-tag children when none are namespaced.
func FindAllWithFallback(parent *etree.Element, ns, tag string) []*etree.Element {
	if parent == nil {
		return nil
	}
	for _, space := range []string{ns, ""} {
		var out []*etree.Element
		for _, child := range parent.ChildElements() {
			if child.Tag == tag && child.NamespaceURI() == space {
				out = append(out, child)
			}
		}
		if len(out) > 0 || ns == "" {
			return out
		}
	}
	return nil
}

// createChild appends a tag element to parent in parent's namespace prefix.
func createChild(parent *etree.Element, tag string) *etree.Element {
	child := parent.CreateElement(tag)
	child.Space = parent.Space
	return child
}
