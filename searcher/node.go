package searcher

import (
	"math"

	"connect4/game"
)

type nodeID int32

const (
	noNode nodeID = -1
	rootID nodeID = 0
)

// node is one position in the search tree, reached by lastMover's move.
// visits counts backpropagation passes; rewards accumulates playout results
// from lastMover's perspective, so rewards/visits estimates "wins for the
// player who just moved into this node".
type node struct {
	board     game.Board
	lastMover game.Piece
	parent    nodeID
	explored  []int    // moves with a child, in expansion order
	children  []nodeID // children[i] was reached by explored[i]
	untried   []int    // legal moves without a child yet, center-first
	visits    int
	rewards   float64
}

// terminal reports whether the node's game is over: lastMover won, or the
// board filled up. Terminal nodes are created with no untried moves and are
// never expanded.
func (n *node) terminal() bool {
	return len(n.untried) == 0 && len(n.children) == 0
}

// tree is an arena of nodes owned by a single search call. Nodes reference
// each other by index, so the whole structure is dropped in one piece when
// the search returns; no parent/child reference cycles to worry about.
type tree struct {
	nodes []node
}

// newTree creates a tree rooted at board. lastMover is the player whose move
// produced the root position: the opponent of the player about to move.
func newTree(board *game.Board, lastMover game.Piece) *tree {
	t := &tree{nodes: make([]node, 0, 64)}
	t.add(board.Copy(), lastMover, noNode)
	return t
}

// add appends a node for an independent board copy and returns its handle.
func (t *tree) add(board game.Board, lastMover game.Piece, parent nodeID) nodeID {
	id := nodeID(len(t.nodes))
	n := node{
		board:     board,
		lastMover: lastMover,
		parent:    parent,
	}
	if board.EndState(lastMover) == game.Playing {
		n.untried = centerFirst(board.LegalColumns())
	}
	t.nodes = append(t.nodes, n)
	return id
}

// node resolves a handle. The pointer is only valid until the next add,
// which may grow the arena.
func (t *tree) node(id nodeID) *node {
	return &t.nodes[id]
}

// expand materializes one child for the node's next untried move and
// returns its handle.
func (t *tree) expand(id nodeID) nodeID {
	move := t.node(id).untried[0]
	mover := t.node(id).lastMover.Opponent()
	board := t.node(id).board // value copy
	mustDrop(&board, move, mover)

	child := t.add(board, mover, id)

	n := t.node(id) // re-resolve: add may have moved the arena
	n.untried = n.untried[1:]
	n.explored = append(n.explored, move)
	n.children = append(n.children, child)
	return child
}

// selectChild picks the child maximizing the UCT score
// rewards/visits + c*sqrt(ln(parentVisits)/visits). An unvisited child
// scores +Inf and wins immediately; ties go to the first child in expansion
// order.
func (t *tree) selectChild(id nodeID, c float64) nodeID {
	n := t.node(id)
	lnN := math.Log(float64(n.visits))

	best := noNode
	bestScore := math.Inf(-1)
	for _, childID := range n.children {
		child := t.node(childID)
		if child.visits == 0 {
			return childID
		}
		score := child.rewards/float64(child.visits) + c*math.Sqrt(lnN/float64(child.visits))
		if score > bestScore {
			bestScore, best = score, childID
		}
	}
	return best
}

// backup walks from a node to the root, counting the visit everywhere and
// crediting the playout reward in each node's own perspective: nodes whose
// lastMover matches the playout perspective receive reward, the others
// 1-reward.
func (t *tree) backup(from nodeID, reward float64) {
	perspective := t.node(from).lastMover
	for id := from; id != noNode; {
		n := t.node(id)
		n.visits++
		if n.lastMover == perspective {
			n.rewards += reward
		} else {
			n.rewards += 1 - reward
		}
		id = n.parent
	}
}

// bestMove returns the move of the most-visited root child. Visit count is
// the robust final criterion; mean reward is noisier at low visit counts.
func (t *tree) bestMove() (int, error) {
	root := t.node(rootID)
	if len(root.children) == 0 {
		return -1, ErrNoMove
	}

	best := -1
	bestVisits := -1
	for i, childID := range root.children {
		if v := t.node(childID).visits; v > bestVisits {
			bestVisits, best = v, root.explored[i]
		}
	}
	return best, nil
}
