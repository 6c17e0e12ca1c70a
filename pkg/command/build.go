package command

import (
	"fmt"

	"github.com/leapstack-labs/modelsql/pkg/parser"
)

// Build converts a recognized statement node into its logical command.
// It is stateless: every call is a pure function of its input, safe to
// run concurrently across unrelated statements.
//
// Passthrough nodes never reach a command; the engine routes them to the
// host database. Handing one to Build is an internal invariant violation,
// reported as a plain error rather than a parse error.
func Build(stmt parser.Statement) (Command, error) {
	switch s := stmt.(type) {
	case *parser.CreateModelStmt:
		name, err := resolveModelName(s.Name)
		if err != nil {
			return nil, err
		}
		// The grammar does not yet parse replace/table/options clauses;
		// the builder supplies their defaults pending that extension.
		return &CreateModel{
			Name:    name,
			URI:     s.URI,
			Table:   "",
			Replace: false,
			Options: map[string]string{},
		}, nil

	case *parser.DescribeModelStmt:
		name, err := resolveModelName(s.Name)
		if err != nil {
			return nil, err
		}
		return &DescribeModel{Name: name}, nil

	case *parser.DropModelStmt:
		name, err := resolveModelName(s.Name)
		if err != nil {
			return nil, err
		}
		return &DropModel{Name: name}, nil

	case *parser.ShowModelsStmt:
		return &ShowModels{}, nil

	default:
		return nil, fmt.Errorf("internal: statement %T is not a model command", stmt)
	}
}

// TableName is a resolved two-part identity: an optional schema and a name.
type TableName struct {
	Schema string
	Table  string
}

// ResolveTableName applies the segment rule to a qualified name: exactly
// one segment is a bare name, exactly two are (schema, name), anything
// else fails with a parse error carrying the offending text and position.
// Segment order is preserved: schema before name.
func ResolveTableName(name *parser.QualifiedName) (TableName, error) {
	switch len(name.Parts) {
	case 1:
		return TableName{Table: name.Parts[0]}, nil
	case 2:
		return TableName{Schema: name.Parts[0], Table: name.Parts[1]}, nil
	default:
		return TableName{}, parser.NewParseError(name.NamePos, parser.ErrBadQualifiedName, name.String())
	}
}

// resolveModelName resolves a qualified name into the catalog identity,
// schema-qualified when a schema segment is present.
func resolveModelName(name *parser.QualifiedName) (string, error) {
	tn, err := ResolveTableName(name)
	if err != nil {
		return "", err
	}
	if tn.Schema != "" {
		return tn.Schema + "." + tn.Table, nil
	}
	return tn.Table, nil
}
