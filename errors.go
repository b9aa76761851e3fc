// Copyright 2026 The Chewing-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chewing

import "errors"

// Sentinel errors of the Session's error taxonomy: ResourceMissing is
// logged and degrades capability rather than aborting, InvalidInput is
// returned to the caller by the validated setters, StoreFailure wraps
// user-store errors that auto-learn logs (never returned to the
// caller), InvariantViolation is only ever logged internally (it
// triggers Reset, never a direct return).
var (
	ErrInvalidInput       = errors.New("chewing: invalid input")
	ErrResourceMissing    = errors.New("chewing: resource missing")
	ErrStoreFailure       = errors.New("chewing: user store failure")
	ErrInvariantViolation = errors.New("chewing: internal invariant violation")
)
