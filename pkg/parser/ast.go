package parser

import (
	"strings"

	"github.com/leapstack-labs/modelsql/pkg/token"
)

// Statement is a recognized statement shape. Model-management statements
// get typed nodes; everything else becomes a Passthrough carrying the raw
// text for the host engine. Every node keeps the position of its first
// token so downstream errors can point at the original statement.
type Statement interface {
	Pos() token.Position
	stmtNode()
}

// QualifiedName is a dot-separated identifier path. Segments hold the raw
// text of unquoted identifiers, or the dequoted text of quoted ones. The
// parser collects segments without validating their count; the command
// builder enforces the 1-or-2 segment rule.
type QualifiedName struct {
	Parts   []string
	NamePos token.Position
}

// String joins the segments with dots.
func (q *QualifiedName) String() string {
	return strings.Join(q.Parts, ".")
}

// CreateModelStmt represents CREATE MODEL <name> [USING '<uri>'].
type CreateModelStmt struct {
	Create token.Position
	Name   *QualifiedName
	URI    string // empty when no USING clause was given
}

func (s *CreateModelStmt) Pos() token.Position { return s.Create }
func (s *CreateModelStmt) stmtNode()           {}

// DescribeModelStmt represents DESCRIBE MODEL <name>.
type DescribeModelStmt struct {
	Describe token.Position
	Name     *QualifiedName
}

func (s *DescribeModelStmt) Pos() token.Position { return s.Describe }
func (s *DescribeModelStmt) stmtNode()           {}

// DropModelStmt represents DROP MODEL <name>.
type DropModelStmt struct {
	Drop token.Position
	Name *QualifiedName
}

func (s *DropModelStmt) Pos() token.Position { return s.Drop }
func (s *DropModelStmt) stmtNode()           {}

// ShowModelsStmt represents SHOW MODELS.
type ShowModelsStmt struct {
	Show token.Position
}

func (s *ShowModelsStmt) Pos() token.Position { return s.Show }
func (s *ShowModelsStmt) stmtNode()           {}

// Passthrough is a statement intentionally left untranslated so the host
// engine's own parser handles it. It is a value, never an error.
type Passthrough struct {
	Start token.Position
	SQL   string // the raw statement text, untouched
}

func (s *Passthrough) Pos() token.Position { return s.Start }
func (s *Passthrough) stmtNode()           {}
