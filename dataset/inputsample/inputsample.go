/*
Package inputsample provides an implementation of dataset.Sample that is read
from an io.Reader.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
readSample represents a sample whose attribute values
are retrieved from a reader. A value will be requested
using a ValueRequester before reading it.
*/
type readSample struct {
	obtainedValues map[int]string
	scanner        *bufio.Scanner
	valueRequester ValueRequester
	vocabulary     *feature.Vocabulary
}

/*
ValueRequester represents a way to ask
for attribute values and reject the given values.
*/
type ValueRequester interface {
	RequestValueFor(*feature.Feature) error
	RejectValueFor(*feature.Feature, string) error
}

/*
New takes an io.Reader, a vocabulary and a ValueRequester and returns a
Sample.

The returned Sample Value method reads attribute values first requesting
them with the given ValueRequester and then reading them from the reader,
one per line. Values are only requested once, later calls for the same
attribute return the value already read.

Empty lines are rejected with the ValueRequester's RejectValueFor method and
another line is read. Any other line is accepted, even if it is not in the
vocabulary of the attribute.
*/
func New(r io.Reader, vocabulary *feature.Vocabulary, valueRequester ValueRequester) dataset.Sample {
	scanner := bufio.NewScanner(r)
	return &readSample{make(map[int]string), scanner, valueRequester, vocabulary}
}

func (rs *readSample) Value(attribute int) (string, error) {
	value, ok := rs.obtainedValues[attribute]
	if ok {
		return value, nil
	}
	if attribute < 0 || attribute >= rs.vocabulary.ClassIndex() {
		return "", fmt.Errorf("have no information about attribute %d, do not know how to read its value", attribute)
	}
	f := rs.vocabulary.Feature(attribute)
	err := rs.valueRequester.RequestValueFor(f)
	if err != nil {
		return "", err
	}
	for rs.scanner.Scan() {
		line := rs.scanner.Text()
		if line != "" {
			rs.obtainedValues[attribute] = line
			return line, nil
		}
		err = rs.valueRequester.RejectValueFor(f, line)
		if err != nil {
			return "", err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("EOF when requesting value for %s", f.Name())
}
