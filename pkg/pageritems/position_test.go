package pageritems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	s, _ := newTestStore(t)
	pages := newTestFactory("pages", func(d any) bool { _, ok := d.(string); return ok })
	require.NoError(t, s.RegisterFactory(pages))

	hf0, hf1 := newTestFactory("h0", nil), newTestFactory("h1", nil)
	ff0 := newTestFactory("f0", nil)
	h0, err := s.AddHeader(hf0, "header-0")
	require.NoError(t, err)
	_, err = s.AddHeader(hf1, "header-1")
	require.NoError(t, err)
	_, err = s.AddFooter(ff0, "footer-0")
	require.NoError(t, err)
	s.AppendAll("p0", "p1", "p2")

	assert.Equal(t, 6, s.Count())

	cases := map[string]struct {
		position       int
		part           Part
		positionInPart int
		data           any
		factory        Factory
		expectedErr    error
	}{
		"FirstHeader":   {position: 0, part: PartHeader, positionInPart: 0, data: "header-0", factory: hf0},
		"SecondHeader":  {position: 1, part: PartHeader, positionInPart: 1, data: "header-1", factory: hf1},
		"FirstData":     {position: 2, part: PartData, positionInPart: 0, data: "p0", factory: pages},
		"LastData":      {position: 4, part: PartData, positionInPart: 2, data: "p2", factory: pages},
		"Footer":        {position: 5, part: PartFooter, positionInPart: 0, data: "footer-0", factory: ff0},
		"ErrorPastEnd":  {position: 6, expectedErr: ErrIndexOutOfRange},
		"ErrorNegative": {position: -1, expectedErr: ErrIndexOutOfRange},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			item, err := s.Resolve(tc.position)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.part, item.Part)
			assert.Equal(t, tc.position, item.Position)
			assert.Equal(t, tc.positionInPart, item.PositionInPart)
			assert.Equal(t, tc.data, item.Data)
			assert.Same(t, tc.factory, item.Factory)
			if tc.part == PartData {
				assert.Nil(t, item.Entry)
			} else {
				assert.NotNil(t, item.Entry)
			}
		})
	}

	// disabling a header shifts every later position down by one
	h0.SetEnabled(false)
	assert.Equal(t, 5, s.Count())
	item, err := s.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, PartData, item.Part)
	assert.Equal(t, "p0", item.Data)
}

func TestResolveUnmatchedData(t *testing.T) {
	s, _ := newTestStore(t, WithData(42))
	_, err := s.Resolve(0)
	assert.True(t, errors.Is(err, ErrNoMatchingFactory))
}

func TestPartString(t *testing.T) {
	assert.Equal(t, "header", PartHeader.String())
	assert.Equal(t, "data", PartData.String())
	assert.Equal(t, "footer", PartFooter.String())
	assert.Equal(t, "unknown", Part(9).String())
}
