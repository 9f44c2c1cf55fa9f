package types

// Event names one host lifecycle callback. The values double as the keys of
// the event_listeners configuration map.
type Event string

const (
	// EventActivated fires when a view gains input focus.
	EventActivated Event = "on_activated_async"
	// EventClone fires when a view is cloned from an existing one.
	EventClone Event = "on_clone_async"
	// EventLoad fires when a file finishes loading.
	EventLoad Event = "on_load_async"
	// EventModified fires after every change to a view. This is the hot
	// path; the gate applies extra structural guards before matching.
	EventModified Event = "on_modified_async"
	// EventNew fires when a new empty buffer is created.
	EventNew Event = "on_new_async"
	// EventPostPaste fires after a paste command completes.
	EventPostPaste Event = "on_post_paste"
	// EventPreSave fires just before a view is saved.
	EventPreSave Event = "on_pre_save_async"
)

// Events lists every recognized event in a stable order.
func Events() []Event {
	return []Event{
		EventActivated,
		EventClone,
		EventLoad,
		EventModified,
		EventNew,
		EventPostPaste,
		EventPreSave,
	}
}
