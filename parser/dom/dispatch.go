package dom

import "github.com/sirupsen/logrus"

// DispatchEvent delivers e with n as the dispatch root. Listener failures are
// logged to the standard logrus logger.
func (n *Node) DispatchEvent(e Event) {
	dispatch(n, e, logrus.StandardLogger())
}

// propagationPath collects the ancestors of target, nearest first, stopping
// after root or at the top of the tree.
func propagationPath(root, target *Node) []*Node {
	if target == root {
		return nil
	}
	var path []*Node
	for cur := target.parentNode; cur != nil; cur = cur.parentNode {
		path = append(path, cur)
		if cur == root {
			break
		}
	}
	return path
}

// stage is the set of registrations one node runs in one phase, taken
// before the capture phase starts.
type stage struct {
	node  *Node
	regs  []*Registration
	phase EventPhase
}

func dispatch(root *Node, e Event, log logrus.FieldLogger) {
	target := e.Target()
	if target == nil {
		log.WithField("event", e.Type()).Debug("no target, event dropped")
		return
	}
	path := propagationPath(root, target)

	// Listeners added from here on wait for the next dispatch. Removals
	// still take effect through Registration.active.
	stages := make([]stage, 0, 2*len(path)+2)
	for i := len(path) - 1; i >= 0; i-- {
		stages = append(stages, stage{path[i], path[i].EventListeners(e.Type(), true), CapturingPhase})
	}
	stages = append(stages,
		stage{target, target.EventListeners(e.Type(), true), AtTargetPhase},
		stage{target, target.EventListeners(e.Type(), false), AtTargetPhase},
	)
	for _, node := range path {
		stages = append(stages, stage{node, node.EventListeners(e.Type(), false), BubblingPhase})
	}

	ev := e.header()
	for _, s := range stages {
		if ev.stopped {
			return
		}
		ev.phase = s.phase
		invoke(s, e, log)
	}
}

func invoke(s stage, e Event, log logrus.FieldLogger) {
	if len(s.regs) == 0 {
		return
	}
	nodeLog := log.WithField("node", s.node.NodeName)
	for _, r := range s.regs {
		r.Execute(e, nodeLog)
	}
}
