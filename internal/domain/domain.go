package domain

import (
	"github.com/yungbote/learnpath-backend/internal/domain/pathway"
	"github.com/yungbote/learnpath-backend/internal/domain/user"
)

type (
	User = user.User

	Pathway     = pathway.Pathway
	Course      = pathway.Course
	Detail      = pathway.Detail
	GraphNode   = pathway.GraphNode
	GraphLink   = pathway.GraphLink
	GraphView   = pathway.GraphView
	CatalogPage = pathway.CatalogPage
	NodeType    = pathway.NodeType
)

const (
	NodeTypeRoot   = pathway.NodeTypeRoot
	NodeTypeModule = pathway.NodeTypeModule
)

var EmptyGraph = pathway.EmptyGraph
