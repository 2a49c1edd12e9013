// seehuhn.de/go/sketch - stroke capture and rasterisation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketch

// Notice is a message for the person drawing.
type Notice string

// Notices sent by a Session.
const (
	NoticeBlankImage Notice = "blank image, not added"
	NoticeFrozen     Notice = "input rejected while frozen"
	NoticeSetClass   Notice = "set the symbol class first"
)

// Notifier is called with notices for the user.
type Notifier func(Notice)
