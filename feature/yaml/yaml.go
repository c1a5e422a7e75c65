/*
Package yaml provides methods to parse feature.Vocabulary specifications
also known as metadata, from YAML documents and to write them back.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/sapling/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadVocabulary takes a slice of bytes with a vocabulary specification in YML
and returns the vocabulary parsed from it or an error.
The YML is expected to be an object containing a features property. The value
for this should be an object with a property for each feature with its name
and a list of its values, in order of position. Features are taken in the
order they appear in the document, the last one being the class.
*/
func ReadVocabulary(md []byte) (*feature.Vocabulary, error) {
	metadata := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	features := make([]*feature.Feature, 0, len(metadata.Features))
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		var stringVs []string
		switch values := item.Value.(type) {
		case string:
			return nil, fmt.Errorf("feature %s: only categorical features are supported, got %q", fn, values)
		case []interface{}:
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
		default:
			return nil, fmt.Errorf("feature %s: invalid feature declaration of type %T", fn, item.Value)
		}
		f, err := feature.NewFeature(fn, stringVs)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return feature.NewVocabulary(features)
}

/*
ReadVocabularyFromFile takes a filepath string, reads its contents and uses
ReadVocabulary to parse it and return the parsed vocabulary or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadVocabularyFromFile(filepath string) (*feature.Vocabulary, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	v, err := ReadVocabulary(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return v, err
}

// WriteVocabulary returns the YML specification for the given vocabulary.
func WriteVocabulary(v *feature.Vocabulary) ([]byte, error) {
	features := make(yaml.MapSlice, 0, v.AttributeCount())
	for _, f := range v.Features() {
		features = append(features, yaml.MapItem{Key: f.Name(), Value: f.Values()})
	}
	md, err := yaml.Marshal(struct {
		Features yaml.MapSlice `yaml:"features"`
	}{features})
	if err != nil {
		return nil, fmt.Errorf("serializing features to yml: %v", err)
	}
	return md, nil
}

// WriteVocabularyToFile writes the YML specification for the vocabulary to the file at filepath.
func WriteVocabularyToFile(filepath string, v *feature.Vocabulary) error {
	md, err := WriteVocabulary(v)
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(filepath, md, 0644)
	if err != nil {
		return fmt.Errorf("writing features yml file %s: %v", filepath, err)
	}
	return nil
}
