// Copyright 2026 The LabRAD-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package trace provides a no-op-unless-built-with-debug diagnostic log for
// the codec and packet layers. See trace_debug.go for the enabled
// implementation.
package trace

// Enabled reports whether debug tracing was compiled in.
const Enabled = enabled

// Log records a trace line. Outside of a `-tags labraddebug` build this is
// a no-op that the compiler inlines away entirely.
func Log(operation, format string, args ...any) {
	log(operation, format, args...)
}
