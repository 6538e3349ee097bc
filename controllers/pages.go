package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The journal pages are server-rendered as plain HTML. The gallery page
// carries the client-side view that consumes the JSON API.

const homePage = `<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>휘슬러 마운틴 바이킹 가이드</title>
    <style>
        body { font-family: 'Apple SD Gothic Neo', sans-serif; background: #f8fafc; color: #1f2937; margin: 0; padding: 40px 16px; }
        .container { max-width: 760px; margin: 0 auto; text-align: center; }
        h1 { font-size: 2.2rem; margin-bottom: 8px; }
        p.lead { color: #6b7280; font-size: 1.1rem; }
        .cards { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-top: 40px; }
        .card { background: #fff; border-radius: 12px; padding: 28px; box-shadow: 0 4px 12px rgba(0,0,0,0.08); text-decoration: none; color: inherit; }
        .card h2 { margin: 0 0 8px; font-size: 1.3rem; }
        .card p { color: #6b7280; margin: 0; }
        footer { margin-top: 60px; color: #9ca3af; font-size: 0.9rem; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🏔️ 휘슬러 마운틴 바이킹 가이드</h1>
        <p class="lead">캐나다 휘슬러 마운틴 바이킹 여행 기록</p>
        <div class="cards">
            <a class="card" href="/expenses">
                <h2>💰 실제 비용</h2>
                <p>하루 동안 실제로 사용한 모든 비용</p>
            </a>
            <a class="card" href="/gallery">
                <h2>📸 갤러리</h2>
                <p>여행의 모든 순간을 담은 사진</p>
            </a>
        </div>
        <footer>© 2025 휘슬러 마운틴 바이킹 가이드</footer>
    </div>
</body>
</html>
`

// Figures are the recorded costs of the one-day trip, CAD.
const expensesPage = `<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>휘슬러 여행 실제 비용</title>
    <style>
        body { font-family: 'Apple SD Gothic Neo', sans-serif; background: #f8fafc; color: #1f2937; margin: 0; padding: 40px 16px; }
        .container { max-width: 760px; margin: 0 auto; }
        h1 { text-align: center; }
        .total { background: #2563eb; color: #fff; border-radius: 12px; padding: 28px; text-align: center; margin: 24px 0; }
        .total .amount { font-size: 2.4rem; font-weight: bold; }
        table { width: 100%; border-collapse: collapse; background: #fff; border-radius: 8px; overflow: hidden; }
        th, td { border: 1px solid #e5e7eb; padding: 10px 14px; text-align: left; }
        td.num { text-align: right; }
        tr.sum td { font-weight: bold; background: #f3f4f6; }
        nav { text-align: center; margin-top: 32px; }
        nav a { color: #2563eb; margin: 0 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>💰 휘슬러 여행 실제 비용</h1>
        <div class="total">
            <div class="amount">CAD 244.50</div>
            <div>약 ₩245,000 · 휘슬러 마운틴 바이킹 1일</div>
        </div>
        <table>
            <tr><th>항목</th><th>설명</th><th>금액 (CAD)</th></tr>
            <tr><td>반나절권</td><td>3:30-7:30 시간대 이용권</td><td class="num">94.50</td></tr>
            <tr><td>보호장비 렌탈</td><td>헬멧, 보호대 일체</td><td class="num">45.00</td></tr>
            <tr><td>주차비</td><td>휘슬러 주차장</td><td class="num">25.00</td></tr>
            <tr><td>주유비</td><td>밴쿠버-휘슬러 왕복</td><td class="num">60.00</td></tr>
            <tr><td>기타 비용</td><td>음료, 간식 등</td><td class="num">20.00</td></tr>
            <tr class="sum"><td>총계</td><td></td><td class="num">244.50</td></tr>
        </table>
        <nav>
            <a href="/">🏠 홈으로</a>
            <a href="/gallery">📸 갤러리</a>
        </nav>
    </div>
</body>
</html>
`

const galleryPage = `<!DOCTYPE html>
<html lang="ko">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>휘슬러 갤러리</title>
    <style>
        body { font-family: 'Apple SD Gothic Neo', sans-serif; background: #f8fafc; color: #1f2937; margin: 0; padding: 40px 16px; }
        .container { max-width: 1000px; margin: 0 auto; }
        h1 { text-align: center; }
        section { background: #fff; border-radius: 12px; padding: 24px; margin-bottom: 24px; box-shadow: 0 2px 8px rgba(0,0,0,0.06); }
        .stats { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; }
        .stat { background: #eff6ff; border-radius: 8px; padding: 16px; text-align: center; }
        .stat .value { font-size: 1.6rem; font-weight: bold; color: #2563eb; }
        .filters { display: flex; gap: 12px; }
        .filters select, .filters input { flex: 1; padding: 8px; border: 1px solid #d1d5db; border-radius: 8px; }
        .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 16px; }
        .photo { border-radius: 8px; overflow: hidden; background: #f3f4f6; cursor: pointer; }
        .photo img { width: 100%; height: 180px; object-fit: cover; display: block; }
        .photo .meta { padding: 10px; font-size: 0.85rem; }
        .tag { display: inline-block; background: #dbeafe; color: #1e40af; border-radius: 999px; padding: 2px 8px; margin: 2px; font-size: 0.75rem; }
        #progress { font-size: 0.9rem; color: #6b7280; white-space: pre-line; }
        #modal { position: fixed; inset: 0; background: rgba(0,0,0,0.6); display: none; align-items: center; justify-content: center; }
        #modal .box { background: #fff; border-radius: 12px; max-width: 720px; width: 90%; max-height: 90vh; overflow-y: auto; padding: 24px; }
        #modal img { max-width: 100%; border-radius: 8px; }
        button { background: #2563eb; color: #fff; border: 0; border-radius: 8px; padding: 10px 18px; cursor: pointer; }
        button.danger { background: #dc2626; }
        nav { text-align: center; margin-bottom: 24px; }
        nav a { color: #2563eb; margin: 0 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>📸 휘슬러 갤러리</h1>
        <nav><a href="/">🏠 홈으로</a><a href="/expenses">💰 실제 비용</a></nav>

        <section>
            <h2>📊 갤러리 통계</h2>
            <div class="stats">
                <div class="stat"><div class="value" id="stat-count">0</div><div>총 사진 수</div></div>
                <div class="stat"><div class="value" id="stat-size">0MB</div><div>총 용량</div></div>
                <div class="stat"><div class="value" id="stat-categories">0</div><div>카테고리</div></div>
                <div class="stat"><div class="value" id="stat-tags">0</div><div>태그 수</div></div>
            </div>
        </section>

        <section>
            <h2>📤 사진 업로드</h2>
            <input type="file" id="files" multiple accept="image/*,.heic,.heif">
            <button id="upload">사진 업로드</button>
            <div id="progress"></div>
        </section>

        <section>
            <h2>🔍 필터 및 검색</h2>
            <div class="filters">
                <select id="category">
                    <option value="">모든 카테고리</option>
                    <option value="landscape">풍경</option>
                    <option value="action">액션</option>
                    <option value="portrait">인물</option>
                    <option value="food">음식</option>
                    <option value="accommodation">숙소</option>
                    <option value="general">일반</option>
                </select>
                <input type="text" id="search" placeholder="태그나 파일명으로 검색...">
            </div>
        </section>

        <section>
            <h2>🖼️ 사진 갤러리</h2>
            <div class="grid" id="grid"></div>
        </section>
    </div>

    <div id="modal"><div class="box" id="modal-box"></div></div>

    <script>
        let photos = [];

        async function load() {
            const params = new URLSearchParams();
            const category = document.getElementById('category').value;
            const search = document.getElementById('search').value.trim();
            if (category) params.set('category', category);
            if (search) params.set('search', search);

            const res = await fetch('/photos?' + params.toString());
            const body = await res.json();
            photos = body.photos || [];
            render();
        }

        function render() {
            const grid = document.getElementById('grid');
            grid.innerHTML = '';
            const tagSet = new Set();
            const catSet = new Set();
            let totalSize = 0;

            photos.forEach(p => {
                totalSize += p.file_size;
                catSet.add(p.category);
                (p.tags || []).forEach(t => tagSet.add(t));

                const card = document.createElement('div');
                card.className = 'photo';
                card.innerHTML =
                    '<img src="' + p.url + '" alt="" loading="lazy">' +
                    '<div class="meta"><strong>' + p.original_name + '</strong><div>' +
                    (p.tags || []).map(t => '<span class="tag">' + t + '</span>').join('') +
                    '</div></div>';
                card.onclick = () => openModal(p);
                grid.appendChild(card);
            });

            document.getElementById('stat-count').textContent = photos.length;
            document.getElementById('stat-size').textContent = (totalSize / 1024 / 1024).toFixed(1) + 'MB';
            document.getElementById('stat-categories').textContent = catSet.size;
            document.getElementById('stat-tags').textContent = tagSet.size;
        }

        function openModal(p) {
            const box = document.getElementById('modal-box');
            const dims = p.width ? p.width + ' x ' + p.height : '-';
            box.innerHTML =
                '<h2>' + p.original_name + '</h2>' +
                '<img src="' + p.url + '" alt="">' +
                '<p>크기: ' + (p.file_size / 1024 / 1024).toFixed(2) + ' MB · 해상도: ' + dims +
                ' · 업로드: ' + new Date(p.uploaded_at).toLocaleString('ko-KR') + '</p>' +
                '<p>' + (p.tags || []).map(t => '<span class="tag">' + t + '</span>').join('') + '</p>' +
                '<button class="danger" onclick="removePhoto(\'' + p.id + '\')">삭제</button> ' +
                '<button onclick="closeModal()">닫기</button>';
            document.getElementById('modal').style.display = 'flex';
        }

        function closeModal() {
            document.getElementById('modal').style.display = 'none';
        }

        async function removePhoto(id) {
            const res = await fetch('/photos?id=' + encodeURIComponent(id), { method: 'DELETE' });
            if (res.ok) {
                closeModal();
                load();
            } else {
                alert('삭제에 실패했습니다');
            }
        }

        // Files upload one request at a time; one failure never stops the rest.
        async function uploadAll() {
            const input = document.getElementById('files');
            const progress = document.getElementById('progress');
            const files = Array.from(input.files || []);
            if (files.length === 0) return;

            let completed = 0;
            const lines = [];
            for (const file of files) {
                const form = new FormData();
                form.append('file', file);
                try {
                    const res = await fetch('/upload', { method: 'POST', body: form });
                    const body = await res.json();
                    lines.push(res.ok ? '✅ ' + file.name : '❌ ' + file.name + ': ' + (body.error || '업로드 실패'));
                } catch (e) {
                    lines.push('❌ ' + file.name + ': 네트워크 오류');
                }
                completed++;
                progress.textContent = lines.join('\n') + '\n진행률: ' + completed + ' / ' + files.length;
            }
            input.value = '';
            load();
        }

        document.getElementById('upload').onclick = uploadAll;
        document.getElementById('category').onchange = load;
        document.getElementById('search').oninput = () => { clearTimeout(window._t); window._t = setTimeout(load, 300); };
        document.getElementById('modal').onclick = e => { if (e.target.id === 'modal') closeModal(); };
        load();
    </script>
</body>
</html>
`

func HomePage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}

func ExpensesPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(expensesPage))
}

func GalleryPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(galleryPage))
}
