package pdfengine

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

const (
	// RoleStructTreeRoot is the role given to the synthetic root node.
	RoleStructTreeRoot = "StructTreeRoot"

	maxStructDepth = 256
	maxRoleHops    = 8
)

// StructTree converts the catalog's structure tree. Kids may be a single
// element, an array, a marked-content id or a reference; only elements with
// a structure type become nodes. Objects already visited are skipped.
func (d *Document) StructTree() (root *domain.StructNode, err error) {
	defer recoverAs(&err, nil)

	ref, ok := d.catalog.Find("StructTreeRoot")
	if !ok {
		return nil, nil
	}
	dict, err := d.ctx.DereferenceDict(ref)
	if err != nil {
		return nil, fmt.Errorf("resolving structure tree: %w", err)
	}
	if dict == nil {
		return nil, nil
	}

	b := &treeBuilder{ctx: d.ctx, roles: roleMap(d.ctx, dict), seen: map[int]bool{}}
	if r, ok := ref.(types.IndirectRef); ok {
		b.seen[r.ObjectNumber.Value()] = true
	}

	root = &domain.StructNode{Role: RoleStructTreeRoot, Children: []*domain.StructNode{}}
	k, _ := dict.Find("K")
	if err := b.kids(root, k, 0); err != nil {
		return nil, err
	}
	return root, nil
}

type treeBuilder struct {
	ctx   *model.Context
	roles map[string]string
	seen  map[int]bool
}

func (b *treeBuilder) kids(parent *domain.StructNode, obj types.Object, depth int) error {
	if obj == nil {
		return nil
	}
	if depth > maxStructDepth {
		return fmt.Errorf("structure tree deeper than %d levels", maxStructDepth)
	}

	if ref, ok := obj.(types.IndirectRef); ok {
		nr := ref.ObjectNumber.Value()
		if b.seen[nr] {
			return nil
		}
		b.seen[nr] = true
		deref, err := b.ctx.Dereference(ref)
		if err != nil {
			return fmt.Errorf("resolving object %d: %w", nr, err)
		}
		obj = deref
	}

	switch v := obj.(type) {
	case types.Array:
		for _, item := range v {
			if err := b.kids(parent, item, depth); err != nil {
				return err
			}
		}
	case types.Dict:
		node, err := b.element(v, depth)
		if err != nil {
			return err
		}
		if node != nil {
			parent.Children = append(parent.Children, node)
		}
	}
	// Integers are marked-content ids and carry no structure.
	return nil
}

// element converts a structure element. Marked-content and object
// references have no /S entry and yield nil.
func (b *treeBuilder) element(d types.Dict, depth int) (*domain.StructNode, error) {
	s, ok := d.Find("S")
	if !ok {
		return nil, nil
	}
	role, ok := s.(types.Name)
	if !ok {
		return nil, nil
	}

	node := &domain.StructNode{
		Role:     b.resolveRole(string(role)),
		Children: []*domain.StructNode{},
	}
	if alt, ok := d.Find("Alt"); ok {
		node.Alt = b.text(alt)
	}
	if a, ok := d.Find("A"); ok {
		node.Attributes = b.attributes(a)
	}

	k, _ := d.Find("K")
	if err := b.kids(node, k, depth+1); err != nil {
		return nil, err
	}
	return node, nil
}

// attributes flattens the string entries of one or more attribute objects.
func (b *treeBuilder) attributes(obj types.Object) map[string]string {
	attrs := map[string]string{}
	var collect func(o types.Object, depth int)
	collect = func(o types.Object, depth int) {
		if depth > 2 {
			return
		}
		o, err := b.ctx.Dereference(o)
		if err != nil {
			return
		}
		switch v := o.(type) {
		case types.Array:
			for _, item := range v {
				collect(item, depth+1)
			}
		case types.Dict:
			for key, val := range v {
				if s := b.text(val); s != "" {
					attrs[key] = s
				}
			}
		}
	}
	collect(obj, 0)
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

func (b *treeBuilder) text(obj types.Object) string {
	obj, err := b.ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	switch obj.(type) {
	case types.StringLiteral, types.HexLiteral:
		return decodeString(obj)
	}
	return ""
}

func (b *treeBuilder) resolveRole(role string) string {
	for i := 0; i < maxRoleHops; i++ {
		mapped, ok := b.roles[role]
		if !ok || mapped == role {
			break
		}
		role = mapped
	}
	return role
}

// roleMap reads the custom-to-standard structure type mapping.
func roleMap(ctx *model.Context, root types.Dict) map[string]string {
	obj, ok := root.Find("RoleMap")
	if !ok {
		return nil
	}
	dict, err := ctx.DereferenceDict(obj)
	if err != nil || dict == nil {
		return nil
	}
	roles := make(map[string]string, len(dict))
	for custom, std := range dict {
		if name, ok := std.(types.Name); ok {
			roles[custom] = string(name)
		}
	}
	return roles
}
