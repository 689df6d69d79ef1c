package pacing

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs for occurrences and other runtime objects.
type IDGenerator interface {
	// Generate an ID
	Generate() string
}

var (
	idGenMutex sync.Mutex
	idGenInUse bool
	idGen      IDGenerator
)

// UseXIDGenerator switches ID generation to globally unique xid strings.
// IDs are no longer deterministic across runs. Must be called before the
// first ID is generated.
func UseXIDGenerator() {
	idGenMutex.Lock()
	defer idGenMutex.Unlock()

	if idGenInUse {
		log.Panic("cannot change id generator type after using it")
	}

	idGen = xidGenerator{}
	idGenInUse = true
}

// GetIDGenerator returns the ID generator used by the current process. The
// default generator produces deterministic sequential IDs.
func GetIDGenerator() IDGenerator {
	idGenMutex.Lock()
	defer idGenMutex.Unlock()

	if !idGenInUse {
		if idGen == nil {
			idGen = &sequentialIDGenerator{}
		}
		idGenInUse = true
	}

	return idGen
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	n := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(n, 10)
}

type xidGenerator struct{}

func (xidGenerator) Generate() string {
	return xid.New().String()
}
