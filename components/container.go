package components

import "github.com/yohamta/donburi"

// ContainerData groups the entities of one kind so they can be torn down
// together.
type ContainerData struct {
	Name     string
	Children []donburi.Entity
}

// Adopt records e as a child of the container.
func (c *ContainerData) Adopt(e donburi.Entity) {
	c.Children = append(c.Children, e)
}

// Release forgets e. It reports whether e was a child.
func (c *ContainerData) Release(e donburi.Entity) bool {
	for i, child := range c.Children {
		if child == e {
			c.Children = append(c.Children[:i], c.Children[i+1:]...)
			return true
		}
	}
	return false
}

var Container = donburi.NewComponentType[ContainerData]()
