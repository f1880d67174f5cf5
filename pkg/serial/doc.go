// Copyright 2018 The Kura Authors.
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

// Package serial prepares a serial device to act as a byte-oriented log sink
// for hosts driving a board over a USB-serial bridge. The device is put in raw
// 8N1 mode so bytes reach the wire untranslated.
//
// The caller owns the returned file; package log never opens or closes sinks.
package serial
