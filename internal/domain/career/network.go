package career

import "career-navigator/internal/domain/catalog"

type NodeType string

const (
	NodeRole  NodeType = "role"
	NodeSkill NodeType = "skill"
)

type NetworkNode struct {
	ID   string
	Type NodeType
}

type NetworkEdge struct {
	Role  string
	Skill string
	Level int
}

type SkillNetwork struct {
	Nodes []NetworkNode
	Edges []NetworkEdge
}

// BuildSkillNetwork links every role to its required skills. Skills shared by several
// roles appear once. A role and a skill with the same name stay distinct nodes.
func BuildSkillNetwork(cat *catalog.Catalog) SkillNetwork {
	out := SkillNetwork{Nodes: []NetworkNode{}, Edges: []NetworkEdge{}}
	if cat == nil {
		return out
	}

	seen := map[NetworkNode]struct{}{}
	add := func(n NetworkNode) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		out.Nodes = append(out.Nodes, n)
	}

	for _, r := range cat.Roles() {
		add(NetworkNode{ID: r.Name, Type: NodeRole})
		for _, req := range r.Requirements {
			add(NetworkNode{ID: req.Skill, Type: NodeSkill})
			out.Edges = append(out.Edges, NetworkEdge{Role: r.Name, Skill: req.Skill, Level: req.Level})
		}
	}
	return out
}
