package wasm

import "github.com/sirupsen/logrus"

// Node is implemented by every value the visitor can traverse (spec
// §4.9). walkChildren calls visit on each direct child in declared order
// and stops at the first error, in the spirit of go/ast.Inspect's walker
// but propagating rather than reducing to a bool.
type Node interface {
	walkChildren(visit func(Node) error) error
}

// VisitError is what a stopped traversal returns: either a DecodeError
// surfaced while materializing a Lazy, or an error a caller's visit
// function returned itself (spec §4.9).
type VisitError struct {
	Path  Path
	Cause error
}

func (e *VisitError) Error() string { return e.Path.String() + ": " + e.Cause.Error() }
func (e *VisitError) Unwrap() error { return e.Cause }

func visitLazyError(err error) error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DecodeError); ok {
		return &VisitError{Path: de.Path, Cause: de}
	}
	return &VisitError{Cause: err}
}

// withVisitPath prepends item to err's Path when err is a *VisitError,
// leaving any other error (or nil) untouched.
func withVisitPath(err error, item PathItem) error {
	ve, ok := err.(*VisitError)
	if !ok {
		return err
	}
	cp := *ve
	cp.Path = append(append(Path(nil), item), ve.Path...)
	return &cp
}

// walk visits n and then its children, depth-first, stopping at the first
// error either f or a child's materialization produces. A plain error
// returned by f is wrapped as a VisitError rooted at n; one already
// surfaced as a VisitError (from a nested decode failure) passes through
// unchanged so its deeper Path is preserved.
func walk(n Node, f func(Node) error) error {
	if err := f(n); err != nil {
		if _, ok := err.(*VisitError); ok {
			return err
		}
		return &VisitError{Cause: err}
	}
	return n.walkChildren(func(child Node) error {
		return walk(child, f)
	})
}

// Visit walks every node reachable from root and calls f on each whose
// runtime type is T (or implements T, when T is an interface such as
// Section), the "for every node of type T call f"
// primitive spec §4.9 describes.
func Visit[T Node](root Node, f func(T) error) error {
	return walk(root, func(n Node) error {
		if t, ok := n.(T); ok {
			return f(t)
		}
		return nil
	})
}

func (m *Module) walkChildren(visit func(Node) error) error {
	for i, s := range m.Sections {
		if err := visit(s); err != nil {
			return withVisitPath(err, indexPath(i))
		}
	}
	return nil
}

// Custom sections swallow their own decode failures during traversal:
// they're optional by construction and must never fail the enclosing
// walk (spec §4.8, §4.9).
func (s *CustomSec) walkChildren(func(Node) error) error {
	if _, err := s.Payload.Contents(); err != nil {
		logrus.WithError(err).Debug("wasmbin: ignoring custom section visit error")
	}
	return nil
}

func (s *TypeSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *ImportSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *FunctionSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *TableSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *MemorySec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *ExceptionSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *GlobalSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *ExportSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *StartSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *ElementSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

func (s *DataCountSec) walkChildren(func(Node) error) error {
	_, err := s.Payload.Contents()
	return visitLazyError(err)
}

// CodeSec additionally materializes each per-function Blob, since the
// code section is the one place two layers of lazy framing nest directly
// inside a section (spec §4.2).
func (s *CodeSec) walkChildren(func(Node) error) error {
	list, err := s.Payload.Contents()
	if err != nil {
		return visitLazyError(err)
	}
	for i := range *list {
		if _, err := (*list)[i].Contents(); err != nil {
			return withVisitPath(visitLazyError(err), indexPath(i))
		}
	}
	return nil
}

func (s *DataSec) walkChildren(func(Node) error) error {
	list, err := s.Payload.Contents()
	if err != nil {
		return visitLazyError(err)
	}
	for i := range *list {
		if _, err := (*list)[i].Init.Contents(); err != nil {
			return withVisitPath(visitLazyError(err), indexPath(i))
		}
	}
	return nil
}
