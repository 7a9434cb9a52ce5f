package preview

import (
	"github.com/andrew-torda/cartoon/pkg/cmmn"
	"github.com/andrew-torda/cartoon/pkg/ribbon"
)

// MainAxes returns the screen x, y and depth directions.
func MainAxes(chunks []ribbon.MeshChunk) (x, y, z cmmn.Xyz) {
	v := newView(chunks)
	return v.x, v.y, v.z
}
