package dom

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects "<node>-<capture|bubble>@<phase>" entries.
type recorder struct {
	calls []string
}

func (r *recorder) listener(name, kind string) EventListener {
	return ListenerFunc(func(e Event) {
		r.calls = append(r.calls, fmt.Sprintf("%s-%s@%s", name, kind, e.Phase()))
	})
}

func (r *recorder) listen(t *testing.T, n *Node, eventType string) {
	t.Helper()
	require.NoError(t, n.AddEventListener(eventType, r.listener(n.NodeName, "capture"), true))
	require.NoError(t, n.AddEventListener(eventType, r.listener(n.NodeName, "bubble"), false))
}

// chain builds a > b > c and returns the three nodes.
func chain(t *testing.T) (a, b, c *Node) {
	a = NewElement("a", nil)
	b = mustAppend(t, a, NewElement("b", nil))
	c = mustAppend(t, b, NewElement("c", nil))
	return a, b, c
}

func clickOn(target *Node) *BaseEvent {
	e := NewEvent(EventClick)
	e.SetTarget(target)
	return e
}

func TestDispatchOrder(t *testing.T) {
	a, b, c := chain(t)
	rec := &recorder{}
	for _, n := range []*Node{a, b, c} {
		rec.listen(t, n, EventClick)
	}

	a.DispatchEvent(clickOn(c))

	assert.Equal(t, []string{
		"a-capture@capturing",
		"b-capture@capturing",
		"c-capture@at-target",
		"c-bubble@at-target",
		"b-bubble@bubbling",
		"a-bubble@bubbling",
	}, rec.calls)
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	a, _, c := chain(t)
	rec := &recorder{}
	rec.listen(t, a, EventKeyDown)
	rec.listen(t, c, EventClick)

	a.DispatchEvent(clickOn(c))

	assert.Equal(t, []string{"c-capture@at-target", "c-bubble@at-target"}, rec.calls)
}

func TestDispatchPathStopsAtDispatchRoot(t *testing.T) {
	a, b, c := chain(t)
	rec := &recorder{}
	for _, n := range []*Node{a, b, c} {
		rec.listen(t, n, EventClick)
	}

	b.DispatchEvent(clickOn(c))

	assert.Equal(t, []string{
		"b-capture@capturing",
		"c-capture@at-target",
		"c-bubble@at-target",
		"b-bubble@bubbling",
	}, rec.calls)
}

func TestDispatchTargetIsRoot(t *testing.T) {
	a, b, _ := chain(t)
	rec := &recorder{}
	rec.listen(t, a, EventClick)
	rec.listen(t, b, EventClick)

	b.DispatchEvent(clickOn(b))

	assert.Equal(t, []string{"b-capture@at-target", "b-bubble@at-target"}, rec.calls)
}

func TestDispatchSameNodeOrder(t *testing.T) {
	node := NewElement("div", nil)
	rec := &recorder{}
	require.NoError(t, node.AddEventListener(EventClick, rec.listener("c1", "capture"), true))
	require.NoError(t, node.AddEventListener(EventClick, rec.listener("b1", "bubble"), false))
	require.NoError(t, node.AddEventListener(EventClick, rec.listener("c2", "capture"), true))
	require.NoError(t, node.AddEventListener(EventClick, rec.listener("b2", "bubble"), false))

	node.DispatchEvent(clickOn(node))

	assert.Equal(t, []string{
		"c1-capture@at-target",
		"c2-capture@at-target",
		"b1-bubble@at-target",
		"b2-bubble@at-target",
	}, rec.calls)
}

func TestDispatchWithoutTarget(t *testing.T) {
	a, _, _ := chain(t)
	rec := &recorder{}
	rec.listen(t, a, EventClick)

	a.DispatchEvent(NewEvent(EventClick))

	assert.Empty(t, rec.calls)
}

func TestStopPropagation(t *testing.T) {
	tests := []struct {
		name     string
		stopAt   string
		expected []string
	}{
		{
			name:     "outer capture",
			stopAt:   "a-capture",
			expected: []string{"a-capture@capturing"},
		},
		{
			name:     "inner capture",
			stopAt:   "b-capture",
			expected: []string{"a-capture@capturing", "b-capture@capturing"},
		},
		{
			name:   "target capture",
			stopAt: "c-capture",
			expected: []string{
				"a-capture@capturing", "b-capture@capturing", "c-capture@at-target",
			},
		},
		{
			name:   "target bubble",
			stopAt: "c-bubble",
			expected: []string{
				"a-capture@capturing", "b-capture@capturing", "c-capture@at-target", "c-bubble@at-target",
			},
		},
		{
			name:   "bubbling",
			stopAt: "b-bubble",
			expected: []string{
				"a-capture@capturing", "b-capture@capturing", "c-capture@at-target",
				"c-bubble@at-target", "b-bubble@bubbling",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b, c := chain(t)
			var calls []string
			for _, n := range []*Node{a, b, c} {
				for _, capture := range []bool{true, false} {
					kind := "bubble"
					if capture {
						kind = "capture"
					}
					name := n.NodeName + "-" + kind
					require.NoError(t, n.AddEventListener(EventClick, ListenerFunc(func(e Event) {
						calls = append(calls, fmt.Sprintf("%s@%s", name, e.Phase()))
						if name == tt.stopAt {
							e.StopPropagation()
						}
					}), capture))
				}
			}

			e := clickOn(c)
			a.DispatchEvent(e)

			assert.Equal(t, tt.expected, calls)
			assert.True(t, e.PropagationStopped())
		})
	}
}

func TestStopPropagationDoesNotSkipSameNodeListeners(t *testing.T) {
	node := NewElement("div", nil)
	var calls []string
	require.NoError(t, node.AddEventListener(EventClick, ListenerFunc(func(e Event) {
		calls = append(calls, "first")
		e.StopPropagation()
	}), false))
	require.NoError(t, node.AddEventListener(EventClick, ListenerFunc(func(e Event) {
		calls = append(calls, "second")
	}), false))

	node.DispatchEvent(clickOn(node))

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestRemoveDuringDispatch(t *testing.T) {
	node := NewElement("div", nil)
	var calls []string
	var victim EventListener
	remover := ListenerFunc(func(e Event) {
		calls = append(calls, "remover")
		assert.NoError(t, node.RemoveEventListener(EventClick, victim, false))
	})
	victim = ListenerFunc(func(e Event) {
		calls = append(calls, "victim")
	})
	last := ListenerFunc(func(e Event) {
		calls = append(calls, "last")
	})
	require.NoError(t, node.AddEventListener(EventClick, remover, false))
	require.NoError(t, node.AddEventListener(EventClick, victim, false))
	require.NoError(t, node.AddEventListener(EventClick, last, false))

	node.DispatchEvent(clickOn(node))
	assert.Equal(t, []string{"remover", "last"}, calls)

	calls = nil
	node.DispatchEvent(clickOn(node))
	assert.Equal(t, []string{"remover", "last"}, calls)
}

func TestAddDuringDispatch(t *testing.T) {
	node := NewElement("div", nil)
	var calls []string
	added := ListenerFunc(func(e Event) {
		calls = append(calls, "added")
	})
	adder := ListenerFunc(func(e Event) {
		calls = append(calls, "adder")
		assert.NoError(t, node.AddEventListener(EventClick, added, false))
	})
	require.NoError(t, node.AddEventListener(EventClick, adder, false))

	node.DispatchEvent(clickOn(node))
	assert.Equal(t, []string{"adder"}, calls)

	calls = nil
	node.DispatchEvent(clickOn(node))
	assert.Equal(t, []string{"adder", "added"}, calls)
}

func TestAddToLaterNodeDuringDispatch(t *testing.T) {
	a, b, c := chain(t)
	var calls []string
	added := ListenerFunc(func(e Event) {
		calls = append(calls, "b-added-capture")
	})
	require.NoError(t, a.AddEventListener(EventClick, ListenerFunc(func(e Event) {
		calls = append(calls, "a-capture")
		assert.NoError(t, b.AddEventListener(EventClick, added, true))
	}), true))

	a.DispatchEvent(clickOn(c))
	assert.Equal(t, []string{"a-capture"}, calls)

	calls = nil
	a.DispatchEvent(clickOn(c))
	assert.Equal(t, []string{"a-capture", "b-added-capture"}, calls)
}

func TestAddBubbleFromTargetCapture(t *testing.T) {
	node := NewElement("div", nil)
	var calls []string
	added := ListenerFunc(func(e Event) {
		calls = append(calls, "added-bubble")
	})
	require.NoError(t, node.AddEventListener(EventClick, ListenerFunc(func(e Event) {
		calls = append(calls, "capture")
		assert.NoError(t, node.AddEventListener(EventClick, added, false))
	}), true))

	node.DispatchEvent(clickOn(node))
	assert.Equal(t, []string{"capture"}, calls)

	calls = nil
	node.DispatchEvent(clickOn(node))
	assert.Equal(t, []string{"capture", "added-bubble"}, calls)
}

func TestRemoveFromLaterNodeDuringDispatch(t *testing.T) {
	a, b, c := chain(t)
	var calls []string
	victim := ListenerFunc(func(e Event) {
		calls = append(calls, "b-bubble")
	})
	require.NoError(t, b.AddEventListener(EventClick, victim, false))
	require.NoError(t, a.AddEventListener(EventClick, ListenerFunc(func(e Event) {
		calls = append(calls, "a-capture")
		assert.NoError(t, b.RemoveEventListener(EventClick, victim, false))
	}), true))

	a.DispatchEvent(clickOn(c))
	assert.Equal(t, []string{"a-capture"}, calls)
}

func TestPanickingListenerIsIsolated(t *testing.T) {
	logger, hook := test.NewNullLogger()
	a, b, c := chain(t)
	rec := &recorder{}
	require.NoError(t, b.AddEventListener(EventClick, ListenerFunc(func(Event) { panic("capture failed") }), true))
	require.NoError(t, c.AddEventListener(EventClick, ListenerFunc(func(Event) { panic(fmt.Errorf("target failed")) }), false))
	for _, n := range []*Node{a, b, c} {
		rec.listen(t, n, EventClick)
	}

	d := NewDispatcher(a, WithLogger(logger))
	assert.NotPanics(t, func() { d.DispatchEvent(clickOn(c)) })

	assert.Equal(t, []string{
		"a-capture@capturing",
		"b-capture@capturing",
		"c-capture@at-target",
		"c-bubble@at-target",
		"b-bubble@bubbling",
		"a-bubble@bubbling",
	}, rec.calls)
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, "b", hook.AllEntries()[0].Data["node"])
	assert.Equal(t, "c", hook.AllEntries()[1].Data["node"])
}

func TestNestedDispatch(t *testing.T) {
	a, b, c := chain(t)
	var calls []string
	require.NoError(t, b.AddEventListener(EventClick, ListenerFunc(func(e Event) {
		calls = append(calls, "b-click")
		inner := NewEvent("custom")
		inner.SetTarget(c)
		a.DispatchEvent(inner)
		calls = append(calls, "b-click-done")
	}), false))
	require.NoError(t, a.AddEventListener("custom", ListenerFunc(func(e Event) {
		calls = append(calls, "a-custom@"+e.Phase().String())
	}), false))
	require.NoError(t, a.AddEventListener(EventClick, ListenerFunc(func(e Event) {
		calls = append(calls, "a-click")
	}), false))

	outer := clickOn(c)
	a.DispatchEvent(outer)

	assert.Equal(t, []string{"b-click", "a-custom@bubbling", "b-click-done", "a-click"}, calls)
	assert.Equal(t, BubblingPhase, outer.Phase())
}
