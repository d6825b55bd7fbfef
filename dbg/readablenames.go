package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, so that vertices and
// triangles are easy to tell apart in log output. It never forgets a name, so
// it grows with every object it has named. That's only a problem if you name
// a lot of objects.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if value := reflect.ValueOf(obj); value.Kind() == reflect.Ptr && value.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Forget every name. Mostly useful in long running processes that rebuild
// meshes repeatedly.
func Reset() {
	memoMu.Lock()
	defer memoMu.Unlock()
	memo = make(map[interface{}]string)
}
