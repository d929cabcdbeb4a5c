package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a linked list of path segments. A nil *Path, or one without a
// segment, denotes the root "$".
type Path struct {
	IndexAll bool
	Index    *int
	Field    *Key
	Subtree  bool
	Next     *Path
}

// FieldPath returns the path to field k followed by next.
func FieldPath(k Key, next *Path) *Path {
	return &Path{Field: &k, Next: next}
}

// IndexPath returns the path to element i followed by next.
func IndexPath(i int, next *Path) *Path {
	return &Path{Index: &i, Next: next}
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	afterSubtree := false
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			afterSubtree = true
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			afterSubtree = false
			x = x.Next
			continue
		}
		if x.Field != nil {
			if !afterSubtree {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(string(*x.Field)))
			afterSubtree = false
			x = x.Next
			continue
		}
		afterSubtree = false
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

// Pointer renders p as an RFC 6901 JSON pointer. Wildcard and subtree
// segments have no pointer form.
func (p *Path) Pointer() (string, error) {
	buf := &strings.Builder{}
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree, x.IndexAll:
			return "", fmt.Errorf("%w: %s has no json pointer form", ErrPath, p)
		case x.Field != nil:
			buf.WriteByte('/')
			f := strings.ReplaceAll(string(*x.Field), "~", "~0")
			buf.WriteString(strings.ReplaceAll(f, "/", "~1"))
		case x.Index != nil:
			buf.WriteByte('/')
			buf.WriteString(strconv.Itoa(*x.Index))
		}
	}
	return buf.String(), nil
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if rest == "" {
				return nil
			}
			if rest[0] != '[' {
				// "$..f" names field f at any depth
				rest = "." + rest
			}
			next := &Path{}
			err := parseFrag(rest, next)
			if err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		k := Key(field)
		parent.Field = &k
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at yPath, or nil if a field along the way is
// missing. Indexes out of range and kind mismatches are errors.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		if yp.Index != nil {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: expected array, got %s", ErrPath, res.Type)
			}
			index := *yp.Index
			if index < 0 || index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrPath, index, len(res.Values))
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: expected object got %s", ErrPath, res.Type)
			}
			res = res.Get(*yp.Field)
			if res == nil {
				return nil, nil
			}
			yp = yp.Next
			continue
		}
		yp = yp.Next
	}
	return res, nil
}

// ListPath appends to dst every node matched by yPath, which may contain
// [*] and .. segments.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp)
}

func (y *Node) listPath(dst []*Node, yp *Path) ([]*Node, error) {
	if yp == nil {
		return append(dst, y), nil
	}
	var err error
	if yp.Subtree {
		if err := y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst, err = node.listPath(dst, yp.Next)
			if err != nil {
				return false, err
			}
			return !node.Type.IsLeaf(), nil
		}); err != nil {
			return nil, err
		}
		return dst, nil
	}
	if yp.Field == nil && yp.Index == nil && !yp.IndexAll {
		return y.listPath(dst, yp.Next)
	}
	switch y.Type {
	case ObjectType:
		if yp.IndexAll || yp.Index != nil {
			return dst, nil
		}
		field := *yp.Field
		for i := range y.Fields {
			if y.Fields[i] != field {
				continue
			}
			dst, err = y.Values[i].listPath(dst, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	case ArrayType:
		if yp.Field != nil {
			return dst, nil
		}
		if yp.Index != nil {
			idx := *yp.Index
			if 0 <= idx && idx < len(y.Values) {
				dst, err = y.Values[idx].listPath(dst, yp.Next)
				if err != nil {
					return nil, err
				}
			}
			return dst, nil
		}
		for _, yv := range y.Values {
			dst, err = yv.listPath(dst, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	default:
		return dst, nil
	}
}
