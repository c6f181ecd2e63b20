package pageritems

import "fmt"

// Part identifies the segment a flat position falls into.
type Part int

const (
	PartHeader Part = iota
	PartData
	PartFooter
)

func (p Part) String() string {
	switch p {
	case PartHeader:
		return "header"
	case PartData:
		return "data"
	case PartFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Item is a flat position resolved to its segment.
type Item struct {
	Part           Part
	Position       int
	PositionInPart int
	Data           any
	Factory        Factory
	// Entry is nil for data items.
	Entry *Entry
}

// Count returns the number of flat positions: headers, then data, then
// footers.
func (s *Store) Count() int {
	return s.headers.Len() + s.data.Len() + s.footers.Len()
}

// Resolve maps a flat position to its segment and the factory that renders
// it. Data items are matched against the registry. Each segment is read
// under its own lock, so concurrent mutations may shift positions between
// the reads.
func (s *Store) Resolve(position int) (Item, error) {
	if position < 0 {
		return Item{}, opError("Resolve", fmt.Errorf("%w: position %d", ErrIndexOutOfRange, position))
	}

	rel := position
	headerCount := s.headers.Len()
	if rel < headerCount {
		return s.resolveEntry(PartHeader, position, rel)
	}
	rel -= headerCount

	dataCount := s.data.Len()
	if rel < dataCount {
		d, err := s.data.Get(rel)
		if err != nil {
			return Item{}, opError("Resolve", err)
		}
		f, err := s.registry.FactoryFor(d)
		if err != nil {
			return Item{}, opError("Resolve", err)
		}
		return Item{Part: PartData, Position: position, PositionInPart: rel, Data: d, Factory: f}, nil
	}
	rel -= dataCount

	footerCount := s.footers.Len()
	if rel < footerCount {
		return s.resolveEntry(PartFooter, position, rel)
	}
	return Item{}, opError("Resolve", fmt.Errorf("%w: position %d, count %d",
		ErrIndexOutOfRange, position, headerCount+dataCount+footerCount))
}

func (s *Store) resolveEntry(part Part, position, rel int) (Item, error) {
	list, _ := s.segmentOf(part == PartHeader)
	e, err := list.Get(rel)
	if err != nil {
		return Item{}, opError("Resolve", err)
	}
	return Item{
		Part:           part,
		Position:       position,
		PositionInPart: rel,
		Data:           e.data,
		Factory:        e.factory,
		Entry:          e,
	}, nil
}
