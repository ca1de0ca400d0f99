package dto

import (
	"career-navigator/internal/domain/career"
	"career-navigator/internal/domain/catalog"
)

type RoleResponse struct {
	Name         string                     `json:"name"`
	Requirements []SkillRequirementResponse `json:"requirements"`
}

func NewRoleResponse(r catalog.Role) RoleResponse {
	return RoleResponse{Name: r.Name, Requirements: NewRequirementResponses(r.Requirements)}
}

type MarketResponse struct {
	Role       string  `json:"role"`
	AvgSalary  float64 `json:"avg_salary"`
	GrowthRate float64 `json:"growth_rate"`
	Demand     float64 `json:"demand"`
}

func NewMarketResponse(m catalog.JobMarketStat) MarketResponse {
	return MarketResponse{Role: m.Role, AvgSalary: m.AvgSalary, GrowthRate: m.GrowthRate, Demand: m.Demand}
}

type InterviewResponse struct {
	Role      string   `json:"role"`
	Questions []string `json:"questions"`
}

type NetworkNodeResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type NetworkEdgeResponse struct {
	Role  string `json:"role"`
	Skill string `json:"skill"`
	Level int    `json:"level"`
}

type NetworkResponse struct {
	Nodes []NetworkNodeResponse `json:"nodes"`
	Edges []NetworkEdgeResponse `json:"edges"`
}

func NewNetworkResponse(n career.SkillNetwork) NetworkResponse {
	out := NetworkResponse{
		Nodes: make([]NetworkNodeResponse, 0, len(n.Nodes)),
		Edges: make([]NetworkEdgeResponse, 0, len(n.Edges)),
	}
	for _, node := range n.Nodes {
		out.Nodes = append(out.Nodes, NetworkNodeResponse{ID: node.ID, Type: string(node.Type)})
	}
	for _, e := range n.Edges {
		out.Edges = append(out.Edges, NetworkEdgeResponse{Role: e.Role, Skill: e.Skill, Level: e.Level})
	}
	return out
}

type NewsResponse struct {
	Headline string `json:"headline"`
	Link     string `json:"link"`
}

func NewNewsResponses(items []catalog.NewsItem) []NewsResponse {
	out := make([]NewsResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewsResponse{Headline: it.Headline, Link: it.Link})
	}
	return out
}
