package mapper

import (
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/N1CEJAN/RossyDiac/core/model"
)

// counterIndex maps a field name to the helper DtpVar whose
// ROS2_ElementCounter attribute value names that field, so Dtp→Msg can
// locate a Dynamic array's length helper without a linear rescan of the
// struct per field.
type counterIndex struct {
	tree art.Tree
}

func newCounterIndex(vars []model.DtpVar) *counterIndex {
	idx := &counterIndex{tree: art.New()}
	for i := range vars {
		v := &vars[i]
		a, ok := v.Attribute("ROS2_ElementCounter")
		if !ok || a.Value.Kind != model.DVString {
			continue
		}
		idx.tree.Insert(art.Key(a.Value.Str), v)
	}
	return idx
}

func (idx *counterIndex) lookup(fieldName string) (*model.DtpVar, bool) {
	v, found := idx.tree.Search(art.Key(fieldName))
	if !found {
		return nil, false
	}
	return v.(*model.DtpVar), true
}
