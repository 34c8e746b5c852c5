// Copyright (c) 2026, The Boxscene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

// Listeners is a [Window] that keeps resize listeners and calls them
// when [Listeners.Resized] is called. The zero value is ready to use.
type Listeners struct {
	next int
	funs map[int]func()
	ids  []int
}

// OnResize adds fun and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (ls *Listeners) OnResize(fun func()) func() {
	if ls.funs == nil {
		ls.funs = make(map[int]func())
	}
	id := ls.next
	ls.next++
	ls.funs[id] = fun
	ls.ids = append(ls.ids, id)
	return func() { ls.remove(id) }
}

func (ls *Listeners) remove(id int) {
	if _, ok := ls.funs[id]; !ok {
		return
	}
	delete(ls.funs, id)
	for i, lid := range ls.ids {
		if lid == id {
			ls.ids = append(ls.ids[:i], ls.ids[i+1:]...)
			break
		}
	}
}

// Resized calls every listener in the order they were added.
func (ls *Listeners) Resized() {
	for _, id := range append([]int(nil), ls.ids...) {
		if fun, ok := ls.funs[id]; ok {
			fun()
		}
	}
}

// Len returns the number of listeners.
func (ls *Listeners) Len() int {
	return len(ls.funs)
}
