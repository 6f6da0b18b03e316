package search

import (
	"container/heap"

	"visibility-planner/geom"
)

// node is one queue entry. A vertex may be queued several times; entries whose
// g no longer matches the vertex's g-score are stale and skipped on pop.
type node struct {
	vertex geom.Point
	g      int
	h      int
	f      int
	index  int
}

// priorityQueue orders by f, then h, then vertex position, so runs are
// deterministic.
type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.vertex.Less(b.vertex)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	n := x.(*node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

func (pq *priorityQueue) push(v geom.Point, g, h int) {
	heap.Push(pq, &node{vertex: v, g: g, h: h, f: g + h})
}

func (pq *priorityQueue) pop() (*node, bool) {
	if pq.Len() == 0 {
		return nil, false
	}
	return heap.Pop(pq).(*node), true
}
