package config

// ApplyOverrides merges the top-level override hooks onto every source's
// hooks in place. For each source hook with a same-named override, the
// fields on_event, on_file_regex, action and setup_script are overwritten
// individually when set in the override; unset override fields leave the
// source hook untouched. Must run after all sources are materialized and
// before any dispatch.
func ApplyOverrides(overrides []Hook, sources []Source) {
	if len(overrides) == 0 {
		return
	}

	// Last-write-wins for duplicate names inside the override list.
	byName := make(map[string]Hook, len(overrides))
	for _, o := range overrides {
		byName[o.Name] = o
	}

	for si := range sources {
		hooks := sources[si].Hooks
		for hi := range hooks {
			override, ok := byName[hooks[hi].Name]
			if !ok {
				continue
			}
			overrideSlice(&hooks[hi].OnEvent, override.OnEvent)
			overrideSlice(&hooks[hi].OnFileRegex, override.OnFileRegex)
			overridePtr(&hooks[hi].Action, override.Action)
			overridePtr(&hooks[hi].SetupScript, override.SetupScript)
		}
	}
}

// overrideSlice replaces dst when the override slice is set (non-nil).
func overrideSlice[E any](dst *[]E, src []E) {
	if src != nil {
		*dst = src
	}
}

// overridePtr replaces dst when the override pointer is set (non-nil).
func overridePtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
