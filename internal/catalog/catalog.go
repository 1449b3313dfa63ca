package catalog

import (
	"fmt"
	"strings"
)

// Flag describes one single-bit capability field of the target structure.
// Index is the field's declaration position, which is also the key the
// probe target uses to select which field to set.
type Flag struct {
	Index int
	Name  string // C field name, e.g. "can_suspend"
}

// ConstName returns the flag name in SCREAMING_SNAKE_CASE, e.g. "CAN_SUSPEND".
func (f Flag) ConstName() string {
	return strings.ToUpper(f.Name)
}

// GoName returns the flag name in CamelCase, e.g. "CanSuspend".
func (f Flag) GoName() string {
	parts := strings.Split(f.Name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// names lists the capability fields of jvmtiCapabilities in declaration
// order. The order must match the field selector switch in internal/jvmti.
var names = [...]string{
	"can_tag_objects",
	"can_generate_field_modification_events",
	"can_generate_field_access_events",
	"can_get_bytecodes",
	"can_get_synthetic_attribute",
	"can_get_owned_monitor_info",
	"can_get_current_contended_monitor",
	"can_get_monitor_info",
	"can_pop_frame",
	"can_redefine_classes",
	"can_signal_thread",
	"can_get_source_file_name",
	"can_get_line_numbers",
	"can_get_source_debug_extension",
	"can_access_local_variables",
	"can_maintain_original_method_order",
	"can_generate_single_step_events",
	"can_generate_exception_events",
	"can_generate_frame_pop_events",
	"can_generate_breakpoint_events",
	"can_suspend",
	"can_redefine_any_class",
	"can_get_current_thread_cpu_time",
	"can_get_thread_cpu_time",
	"can_generate_method_entry_events",
	"can_generate_method_exit_events",
	"can_generate_all_class_hook_events",
	"can_generate_compiled_method_load_events",
	"can_generate_monitor_events",
	"can_generate_vm_object_alloc_events",
	"can_generate_native_method_bind_events",
	"can_generate_garbage_collection_events",
	"can_generate_object_free_events",
	"can_force_early_return",
	"can_get_owned_monitor_stack_depth_info",
	"can_get_constant_pool",
	"can_set_native_method_prefix",
	"can_retransform_classes",
	"can_retransform_any_class",
	"can_generate_resource_exhaustion_heap_events",
	"can_generate_resource_exhaustion_threads_events",
	"can_generate_early_vmstart",
	"can_generate_early_class_hook_events",
	"can_generate_sampled_object_alloc_events",
	"can_support_virtual_threads",
}

// Count returns the number of catalogued flags.
func Count() int {
	return len(names)
}

// Flags returns the full catalog in declaration order.
func Flags() []Flag {
	flags := make([]Flag, len(names))
	for i, name := range names {
		flags[i] = Flag{Index: i, Name: name}
	}
	return flags
}

// Lookup returns the flag with the given field name.
func Lookup(name string) (Flag, bool) {
	for i, n := range names {
		if n == name {
			return Flag{Index: i, Name: n}, true
		}
	}
	return Flag{}, false
}

// Validate checks the catalog for empty or duplicate names. The catalog is
// static, so this only guards against editing mistakes; a failure here means
// the source needs fixing, not that the run environment is unsupported.
func Validate() error {
	seen := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return fmt.Errorf("catalog entry %d is empty", i)
		}
		if !strings.HasPrefix(n, "can_") {
			return fmt.Errorf("catalog entry %d (%s) is not a capability name", i, n)
		}
		if prev, ok := seen[n]; ok {
			return fmt.Errorf("catalog entries %d and %d both named %s", prev, i, n)
		}
		seen[n] = i
	}
	return nil
}
