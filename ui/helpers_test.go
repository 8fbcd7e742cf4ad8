package ui

import "github.com/OpticalFlyer/cleangui/geom"

type fakeDisplay struct {
	size geom.Vec2
}

func (d *fakeDisplay) ScreenSize() geom.Vec2 { return d.size }

// countingWidget counts the values its parent pushes down.
type countingWidget struct {
	*Node
	sizeCalls int
	posCalls  int
}

func newCountingWidget(name string) *countingWidget {
	return &countingWidget{Node: NewNode(Props{
		Name:     name,
		Size:     geom.V(geom.PromilleFull, geom.PromilleFull),
		SizeType: geom.Promillage,
	})}
}

func (w *countingWidget) SetSizeOfParent(size geom.Vec2) {
	w.sizeCalls++
	w.Node.SetSizeOfParent(size)
}

func (w *countingWidget) SetGlobPosOfParent(pos geom.Vec2) {
	w.posCalls++
	w.Node.SetGlobPosOfParent(pos)
}

type touchEvent struct {
	who     string
	pressed bool
	pos     geom.Vec2
}

type eventLog struct {
	events []touchEvent
}

// recordingListener is a touch widget that writes every event to a shared log.
type recordingListener struct {
	*Node
	log *eventLog
}

func newRecordingListener(name string, log *eventLog) *recordingListener {
	return &recordingListener{
		Node: NewNode(Props{Name: name, Size: geom.V(10, 10)}),
		log:  log,
	}
}

func (r *recordingListener) TouchPressed(pos geom.Vec2) {
	r.log.events = append(r.log.events, touchEvent{who: r.Name(), pressed: true, pos: pos})
}

func (r *recordingListener) TouchReleased(pos geom.Vec2) {
	r.log.events = append(r.log.events, touchEvent{who: r.Name(), pressed: false, pos: pos})
}

func fillParent(name string, maxChildren int) Props {
	return Props{
		Name:        name,
		PosType:     geom.Promillage,
		Size:        geom.V(geom.PromilleFull, geom.PromilleFull),
		SizeType:    geom.Promillage,
		MaxChildren: maxChildren,
	}
}
