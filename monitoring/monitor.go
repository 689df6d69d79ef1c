// Package monitoring turns running pacing systems into a small web server so
// an external client can watch the forcing signal while a long simulation
// runs.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/sarchlab/pacing/pacing"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Monitor exposes registered pacing systems over HTTP for external
// observation.
type Monitor struct {
	portNumber  int
	openBrowser bool

	pacersLock sync.Mutex
	pacers     map[string]pacing.Pacer
	protocols  map[string]*pacing.Protocol

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		pacers:    make(map[string]pacing.Pacer),
		protocols: make(map[string]*pacing.Protocol),
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitor in the default browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true

	return m
}

// RegisterPacer registers a pacer to be monitored under the given name.
func (m *Monitor) RegisterPacer(name string, p pacing.Pacer) {
	m.pacersLock.Lock()
	defer m.pacersLock.Unlock()

	m.pacers[name] = p

	if s, ok := p.(*pacing.PacingSystem); ok {
		m.protocols[name] = s.Protocol()
	}
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        pacing.GetIDGenerator().Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars)-1)
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// StartServer starts the monitor as a web server with a custom port if
// wanted.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/pacers", m.listPacers)
	r.HandleFunc("/api/now/{name}", m.now)
	r.HandleFunc("/api/pace/{name}", m.paceState)
	r.HandleFunc("/api/protocol/{name}", m.listProtocolEvents)
	r.HandleFunc("/api/state/{name}", m.pacerDetails)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring pacing with %s\n", url)

	if m.openBrowser {
		go func() {
			_ = browser.OpenURL(url)
		}()
	}

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) listPacers(w http.ResponseWriter, _ *http.Request) {
	m.pacersLock.Lock()
	names := make([]string, 0, len(m.pacers))
	for name := range m.pacers {
		names = append(names, name)
	}
	m.pacersLock.Unlock()

	writeJSON(w, names)
}

func (m *Monitor) now(w http.ResponseWriter, r *http.Request) {
	p := m.findPacerOr404(w, mux.Vars(r)["name"])
	if p == nil {
		return
	}

	fmt.Fprintf(w, "{\"now\":%.10f}", p.Time())
}

type paceStateRsp struct {
	Time     float64  `json:"time"`
	Pace     float64  `json:"pace"`
	NextTime *float64 `json:"next_time"`
}

func (m *Monitor) paceState(w http.ResponseWriter, r *http.Request) {
	p := m.findPacerOr404(w, mux.Vars(r)["name"])
	if p == nil {
		return
	}

	rsp := paceStateRsp{
		Time: float64(p.Time()),
		Pace: p.Pace(),
	}

	// The next change time is null when nothing more is scheduled.
	next := float64(p.NextTime())
	if !math.IsInf(next, 1) {
		rsp.NextTime = &next
	}

	writeJSON(w, rsp)
}

type protocolEventRsp struct {
	Level      float64 `json:"level"`
	Start      float64 `json:"start"`
	Duration   float64 `json:"duration"`
	Period     float64 `json:"period"`
	Multiplier int     `json:"multiplier"`
}

func (m *Monitor) listProtocolEvents(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	m.pacersLock.Lock()
	protocol, ok := m.protocols[name]
	m.pacersLock.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Protocol not found"))
		dieOnErr(err)
		return
	}

	events := protocol.Events()
	rsp := make([]protocolEventRsp, 0, len(events))
	for _, e := range events {
		rsp = append(rsp, protocolEventRsp{
			Level:      e.Level,
			Start:      float64(e.Start),
			Duration:   float64(e.Duration),
			Period:     float64(e.Period),
			Multiplier: e.Multiplier,
		})
	}

	writeJSON(w, rsp)
}

func (m *Monitor) pacerDetails(w http.ResponseWriter, r *http.Request) {
	p := m.findPacerOr404(w, mux.Vars(r)["name"])
	if p == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(p)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) findPacerOr404(
	w http.ResponseWriter,
	name string,
) pacing.Pacer {
	m.pacersLock.Lock()
	p := m.pacers[name]
	m.pacersLock.Unlock()

	if p == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Pacer not found"))
		dieOnErr(err)
	}

	return p
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	writeJSON(w, m.progressBars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
