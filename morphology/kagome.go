package morphology

import (
	"fmt"
	"runtime"

	"github.com/ikawaha/kagome-dict/dict"
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// IPA 辞書の品詞 (大分類)
const (
	TagMeishi       Tag = "名詞"
	TagDoushi       Tag = "動詞"
	TagKeiyoushi    Tag = "形容詞"
	TagFukushi      Tag = "副詞"
	TagJoshi        Tag = "助詞"
	TagJodoushi     Tag = "助動詞"
	TagRentaishi    Tag = "連体詞"
	TagSetsuzokushi Tag = "接続詞"
	TagKandoushi    Tag = "感動詞"
	TagSettoushi    Tag = "接頭詞"
	TagKigou        Tag = "記号"
	TagFiller       Tag = "フィラー"
	TagSonota       Tag = "その他"
)

var IPADicCatalog = NewCatalog(
	TagMeishi, TagDoushi, TagKeiyoushi, TagFukushi, TagJoshi, TagJodoushi,
	TagRentaishi, TagSetsuzokushi, TagKandoushi, TagSettoushi, TagKigou,
	TagFiller, TagSonota,
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	dict *dict.Dict
}

func NewKagome() *Kagome {
	return &Kagome{
		dict: ipaneologd.Dict(),
	}
}

func (k *Kagome) Catalog() Catalog {
	return IPADicCatalog
}

func (k *Kagome) Open(opts Options) (Tokenizer, error) {
	tokenizerOpts := []tokenizer.Option{tokenizer.OmitBosEos()}
	var udict *dict.UserDict
	if opts.UserDictionary != nil {
		records, err := dict.NewUserDicRecords(opts.UserDictionary)
		if err != nil {
			return nil, fmt.Errorf("parse user dictionary: %w", err)
		}
		if udict, err = records.NewUserDict(); err != nil {
			return nil, fmt.Errorf("build user dictionary: %w", err)
		}
		tokenizerOpts = append(tokenizerOpts, tokenizer.UserDict(udict))
	}
	pool, err := NewPool(runtime.GOMAXPROCS(0), func() (Tokenizer, error) {
		t, err := tokenizer.New(k.dict, tokenizerOpts...)
		if err != nil {
			return nil, err
		}
		return &kagomeTokenizer{
			kagome:  t,
			udict:   udict,
			mode:    opts.DecompoundMode,
			exclude: opts.Exclude,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

type kagomeTokenizer struct {
	kagome  *tokenizer.Tokenizer
	udict   *dict.UserDict
	mode    DecompoundMode
	exclude TagSet
}

func (k *kagomeTokenizer) Analyze(_, text string) ([]Token, error) {
	tokens := k.kagome.Analyze(text, tokenizer.Normal)
	result := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		if len(features) > 1 && features[1] == "空白" {
			continue
		}
		compound := NewToken(token.Surface, k.tagOf(token))
		var parts []Token
		if k.mode != DecompoundNone {
			parts = k.constituents(token, compound.Tag)
		}
		for _, t := range AppendDecompounded(nil, k.mode, compound, parts) {
			if !k.exclude.Contains(t.Tag) {
				result = append(result, t)
			}
		}
	}
	return result, nil
}

// 複合語の構成要素. ユーザー辞書の語はその分割を, それ以外は Search モードの分割を使う
func (k *kagomeTokenizer) constituents(token tokenizer.Token, tag Tag) []Token {
	if token.Class == tokenizer.USER {
		if k.udict == nil || token.ID < 0 || token.ID >= len(k.udict.Contents) {
			return nil
		}
		segs := k.udict.Contents[token.ID].Tokens
		parts := make([]Token, len(segs))
		for i, s := range segs {
			parts[i] = NewToken(s, tag)
		}
		return parts
	}
	split := k.kagome.Analyze(token.Surface, tokenizer.Search)
	parts := make([]Token, len(split))
	for i, s := range split {
		parts[i] = NewToken(s.Surface, k.tagOf(s))
	}
	return parts
}

func (k *kagomeTokenizer) tagOf(token tokenizer.Token) Tag {
	features := token.Features()
	if len(features) == 0 {
		return TagSonota
	}
	tag := Tag(features[0])
	if token.Class == tokenizer.USER {
		if _, err := IPADicCatalog.Resolve(string(tag)); err != nil {
			return TagMeishi
		}
	}
	return tag
}
