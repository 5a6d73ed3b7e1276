package model

// Resource is an exclusive resource record: at most one owning process and
// an ordered wait queue of processes blocked on it. The resource table is
// owned by the dispatch driver; policies mutate Owner and Waiters only.
type Resource struct {
	RID     int      `json:"rid"`
	Owner   *Process `json:"-"`
	Waiters *Queue   `json:"-"`
}

// NewResource creates a free resource with an empty wait queue.
func NewResource(rid int) *Resource {
	return &Resource{RID: rid, Waiters: NewQueue()}
}

// NewResourceTable creates count free resources with identities 0..count-1.
func NewResourceTable(count int) []*Resource {
	table := make([]*Resource, count)
	for i := range table {
		table[i] = NewResource(i)
	}
	return table
}
