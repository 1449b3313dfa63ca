//go:build cgo

package jvmti

/*
#include <string.h>

// Field list mirrors jvmtiCapabilities from the JVM TI header, including
// the unnamed padding that rounds the structure up to 16 bytes.
typedef struct {
	unsigned int can_tag_objects : 1;
	unsigned int can_generate_field_modification_events : 1;
	unsigned int can_generate_field_access_events : 1;
	unsigned int can_get_bytecodes : 1;
	unsigned int can_get_synthetic_attribute : 1;
	unsigned int can_get_owned_monitor_info : 1;
	unsigned int can_get_current_contended_monitor : 1;
	unsigned int can_get_monitor_info : 1;
	unsigned int can_pop_frame : 1;
	unsigned int can_redefine_classes : 1;
	unsigned int can_signal_thread : 1;
	unsigned int can_get_source_file_name : 1;
	unsigned int can_get_line_numbers : 1;
	unsigned int can_get_source_debug_extension : 1;
	unsigned int can_access_local_variables : 1;
	unsigned int can_maintain_original_method_order : 1;
	unsigned int can_generate_single_step_events : 1;
	unsigned int can_generate_exception_events : 1;
	unsigned int can_generate_frame_pop_events : 1;
	unsigned int can_generate_breakpoint_events : 1;
	unsigned int can_suspend : 1;
	unsigned int can_redefine_any_class : 1;
	unsigned int can_get_current_thread_cpu_time : 1;
	unsigned int can_get_thread_cpu_time : 1;
	unsigned int can_generate_method_entry_events : 1;
	unsigned int can_generate_method_exit_events : 1;
	unsigned int can_generate_all_class_hook_events : 1;
	unsigned int can_generate_compiled_method_load_events : 1;
	unsigned int can_generate_monitor_events : 1;
	unsigned int can_generate_vm_object_alloc_events : 1;
	unsigned int can_generate_native_method_bind_events : 1;
	unsigned int can_generate_garbage_collection_events : 1;
	unsigned int can_generate_object_free_events : 1;
	unsigned int can_force_early_return : 1;
	unsigned int can_get_owned_monitor_stack_depth_info : 1;
	unsigned int can_get_constant_pool : 1;
	unsigned int can_set_native_method_prefix : 1;
	unsigned int can_retransform_classes : 1;
	unsigned int can_retransform_any_class : 1;
	unsigned int can_generate_resource_exhaustion_heap_events : 1;
	unsigned int can_generate_resource_exhaustion_threads_events : 1;
	unsigned int can_generate_early_vmstart : 1;
	unsigned int can_generate_early_class_hook_events : 1;
	unsigned int can_generate_sampled_object_alloc_events : 1;
	unsigned int can_support_virtual_threads : 1;
	unsigned int : 3;
	unsigned int : 16;
	unsigned int : 16;
	unsigned int : 16;
	unsigned int : 16;
	unsigned int : 16;
} jvmtiCapabilities;

static void capgen_zero(jvmtiCapabilities* c) {
	memset(c, 0, sizeof(*c));
}

// capgen_set writes 1 to the field at the given declaration index. Each
// case is a plain field assignment, so the compiler itself decides which
// bit the write lands on. Case order must match internal/catalog.
static int capgen_set(jvmtiCapabilities* c, int index) {
	switch (index) {
	case 0: c->can_tag_objects = 1; return 0;
	case 1: c->can_generate_field_modification_events = 1; return 0;
	case 2: c->can_generate_field_access_events = 1; return 0;
	case 3: c->can_get_bytecodes = 1; return 0;
	case 4: c->can_get_synthetic_attribute = 1; return 0;
	case 5: c->can_get_owned_monitor_info = 1; return 0;
	case 6: c->can_get_current_contended_monitor = 1; return 0;
	case 7: c->can_get_monitor_info = 1; return 0;
	case 8: c->can_pop_frame = 1; return 0;
	case 9: c->can_redefine_classes = 1; return 0;
	case 10: c->can_signal_thread = 1; return 0;
	case 11: c->can_get_source_file_name = 1; return 0;
	case 12: c->can_get_line_numbers = 1; return 0;
	case 13: c->can_get_source_debug_extension = 1; return 0;
	case 14: c->can_access_local_variables = 1; return 0;
	case 15: c->can_maintain_original_method_order = 1; return 0;
	case 16: c->can_generate_single_step_events = 1; return 0;
	case 17: c->can_generate_exception_events = 1; return 0;
	case 18: c->can_generate_frame_pop_events = 1; return 0;
	case 19: c->can_generate_breakpoint_events = 1; return 0;
	case 20: c->can_suspend = 1; return 0;
	case 21: c->can_redefine_any_class = 1; return 0;
	case 22: c->can_get_current_thread_cpu_time = 1; return 0;
	case 23: c->can_get_thread_cpu_time = 1; return 0;
	case 24: c->can_generate_method_entry_events = 1; return 0;
	case 25: c->can_generate_method_exit_events = 1; return 0;
	case 26: c->can_generate_all_class_hook_events = 1; return 0;
	case 27: c->can_generate_compiled_method_load_events = 1; return 0;
	case 28: c->can_generate_monitor_events = 1; return 0;
	case 29: c->can_generate_vm_object_alloc_events = 1; return 0;
	case 30: c->can_generate_native_method_bind_events = 1; return 0;
	case 31: c->can_generate_garbage_collection_events = 1; return 0;
	case 32: c->can_generate_object_free_events = 1; return 0;
	case 33: c->can_force_early_return = 1; return 0;
	case 34: c->can_get_owned_monitor_stack_depth_info = 1; return 0;
	case 35: c->can_get_constant_pool = 1; return 0;
	case 36: c->can_set_native_method_prefix = 1; return 0;
	case 37: c->can_retransform_classes = 1; return 0;
	case 38: c->can_retransform_any_class = 1; return 0;
	case 39: c->can_generate_resource_exhaustion_heap_events = 1; return 0;
	case 40: c->can_generate_resource_exhaustion_threads_events = 1; return 0;
	case 41: c->can_generate_early_vmstart = 1; return 0;
	case 42: c->can_generate_early_class_hook_events = 1; return 0;
	case 43: c->can_generate_sampled_object_alloc_events = 1; return 0;
	case 44: c->can_support_virtual_threads = 1; return 0;
	default: return -1;
	}
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Capabilities wraps one host-compiled jvmtiCapabilities instance.
type Capabilities struct {
	c C.jvmtiCapabilities
}

// New returns a fresh zeroed capability structure instance.
func New() (*Capabilities, error) {
	caps := &Capabilities{}
	caps.Zero()
	return caps, nil
}

// Size returns the compiled sizeof of the structure.
func (t *Capabilities) Size() int {
	return int(C.sizeof_jvmtiCapabilities)
}

// Zero memsets the instance.
func (t *Capabilities) Zero() {
	C.capgen_zero(&t.c)
}

// Set writes 1 to the field at the given declaration index via compiled C.
func (t *Capabilities) Set(index int) error {
	if C.capgen_set(&t.c, C.int(index)) != 0 {
		return fmt.Errorf("jvmti: no capability field at index %d", index)
	}
	return nil
}

// Bytes returns a copy of the instance's raw byte representation.
func (t *Capabilities) Bytes() []byte {
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&t.c)), t.Size())
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}
