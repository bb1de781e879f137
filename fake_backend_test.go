package nori

import (
	"strings"

	"github.com/twosom/logstash-filter-nori/morphology"
)

// fakeBackend replays canned analyses tagged with the Sejong tag set.
// Whole texts are looked up first, then whitespace separated chunks.
type fakeBackend struct {
	analyses map[string][]fakeMorpheme
}

type fakeMorpheme struct {
	surface string
	tag     morphology.Tag
	reading string
	parts   []morphology.Token
}

const poem = "가슴 속에 하나 둘 새겨지는 별을\n" +
	"이제 다 못 헤는 것은\n" +
	"쉬이 아침이 오는 까닭이요,\n" +
	"내일 밤이 남은 까닭이요,\n" +
	"아직 나의 청춘이 다하지 않은 까닭입니다.\n"

func m(surface string, tag morphology.Tag, parts ...morphology.Token) fakeMorpheme {
	return fakeMorpheme{surface: surface, tag: tag, parts: parts}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		analyses: map[string][]fakeMorpheme{
			poem: {
				m("가슴", morphology.TagNNG), m("속", morphology.TagNNG), m("에", morphology.TagJ),
				m("하나", morphology.TagNR), m("둘", morphology.TagNR),
				m("새겨지", morphology.TagVV), m("는", morphology.TagE), m("별", morphology.TagNNG), m("을", morphology.TagJ),
				m("이제", morphology.TagMAG), m("다", morphology.TagMAG), m("못", morphology.TagMAG),
				m("헤", morphology.TagVV), m("는", morphology.TagE), m("것", morphology.TagNNB), m("은", morphology.TagJ),
				m("쉬이", morphology.TagMAG), m("아침", morphology.TagNNG), m("이", morphology.TagJ),
				m("오", morphology.TagVV), m("는", morphology.TagE),
				m("까닭", morphology.TagNNG), m("이", morphology.TagVCP), m("요", morphology.TagE), m(",", morphology.TagSC),
				m("내일", morphology.TagNNG), m("밤", morphology.TagNNG), m("이", morphology.TagJ),
				m("남", morphology.TagVV), m("은", morphology.TagE),
				m("까닭", morphology.TagNNG), m("이", morphology.TagVCP), m("요", morphology.TagE), m(",", morphology.TagSC),
				m("아직", morphology.TagMAG), m("나", morphology.TagNP), m("의", morphology.TagJ),
				m("청춘", morphology.TagNNG), m("이", morphology.TagJ),
				m("다하", morphology.TagVV), m("지", morphology.TagE), m("않", morphology.TagVX), m("은", morphology.TagE),
				m("까닭", morphology.TagNNG), m("이", morphology.TagVCP), m("ㅂ니다", morphology.TagE), m(".", morphology.TagSF),
			},
			"삼성전자": {
				m("삼성전자", morphology.TagNNP,
					morphology.NewToken("삼성", morphology.TagNNP),
					morphology.NewToken("전자", morphology.TagNNG)),
			},
			"신조어":          {m("신조어", morphology.TagNNG)},
			"Elasticsearch": {m("Elasticsearch", morphology.TagSL)},
			"漢字":           {{surface: "漢字", tag: morphology.TagNNG, reading: "한자"}},
			"일며들다": {
				m("일", morphology.TagNNG), m("며", morphology.TagE), m("들", morphology.TagVV), m("다", morphology.TagE),
			},
		},
	}
}

func (b *fakeBackend) Catalog() morphology.Catalog {
	return morphology.SejongCatalog
}

func (b *fakeBackend) Open(opts morphology.Options) (morphology.Tokenizer, error) {
	var user *morphology.UserDictionary
	if opts.UserDictionary != nil {
		var err error
		if user, err = morphology.ParseUserDictionary(opts.UserDictionary); err != nil {
			return nil, err
		}
	}
	return &fakeTokenizer{analyses: b.analyses, user: user, mode: opts.DecompoundMode}, nil
}

type fakeTokenizer struct {
	analyses map[string][]fakeMorpheme
	user     *morphology.UserDictionary
	mode     morphology.DecompoundMode
}

func (t *fakeTokenizer) Analyze(_, text string) ([]morphology.Token, error) {
	var morphemes []fakeMorpheme
	if ms, ok := t.analyses[text]; ok {
		morphemes = ms
	} else {
		for _, chunk := range strings.Fields(text) {
			if segs, ok := t.user.Lookup(chunk); ok {
				var parts []morphology.Token
				for _, s := range segs {
					parts = append(parts, morphology.NewToken(s, morphology.TagNNG))
				}
				morphemes = append(morphemes, m(chunk, morphology.TagNNG, parts...))
				continue
			}
			if ms, ok := t.analyses[chunk]; ok {
				morphemes = append(morphemes, ms...)
				continue
			}
			morphemes = append(morphemes, m(chunk, morphology.TagUNKNOWN))
		}
	}

	tokens := make([]morphology.Token, 0, len(morphemes))
	for _, fm := range morphemes {
		compound := morphology.NewToken(fm.surface, fm.tag)
		compound.Reading = fm.reading
		tokens = morphology.AppendDecompounded(tokens, t.mode, compound, fm.parts)
	}
	return tokens, nil
}
