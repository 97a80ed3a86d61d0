/*
 * errors.go, part of srreal.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package srreal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rmera/srreal/mask"
)

//Kinds of errors returned by the calculator. All the errors returned by this package
//wrap one of them, so they can be checked with errors.Is.
var (
	//ErrLookup is the kind of errors for unknown names: attributes, atom symbols,
	//envelope, width model or table types.
	ErrLookup = errors.New("srreal: lookup error")
	//ErrRange is the kind of errors for pair mask indexes out of range.
	ErrRange = mask.ErrRange
	//ErrState is the kind of errors for results requested before an evaluation.
	ErrState = errors.New("srreal: calculator has not been evaluated")
	//ErrConfig is the kind of errors for invalid parameters.
	ErrConfig = errors.New("srreal: invalid configuration")
)

//Error is the error type of the package. Besides its kind, it keeps the error
//that caused it, if any, and a trail of the functions it went through.
type Error struct {
	message  string
	kind     error
	cause    error
	deco     []string
	critical bool
}

//newError returns an Error of the given kind, caused by cause (which can be nil).
func newError(kind, cause error, caller string, format string, a ...interface{}) *Error {
	return &Error{
		message:  fmt.Sprintf(format, a...),
		kind:     kind,
		cause:    cause,
		deco:     []string{caller},
		critical: kind != ErrState,
	}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	ret := err.message
	if err.cause != nil {
		ret = ret + ": " + err.cause.Error()
	}
	if len(err.deco) > 0 {
		ret = ret + " (" + strings.Join(err.deco, " < ") + ")"
	}
	return ret
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns false only for errors that don't indicate a problem in the
//configuration, like asking for results before evaluating.
func (err *Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error and its cause.
func (err *Error) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}

//errDecorate adds caller to the trail of err, if err is an *Error.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
